package transpile

import (
	"errors"
	"strings"
	"testing"
)

func mustTranslate(t *testing.T, source string) string {
	t.Helper()
	res := Translate(source)
	if !res.OK() {
		t.Fatalf("Translate() error = %v", res.Err)
	}
	return res.Code
}

func TestTranslateHelloWorld(t *testing.T) {
	code := mustTranslate(t, `public class Main {
    public static void main(String[] args) {
        System.out.println("Hello, World!");
    }
}`)

	for _, want := range []string{
		"function main(args) {",
		`__log("Hello, World!");`,
		"if (typeof main === 'function') { main(); }",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("translation missing %q:\n%s", want, code)
		}
	}
	if strings.Contains(code, "class Main") {
		t.Errorf("entry class was not unwrapped:\n%s", code)
	}
}

func TestTranslateKeepsLiteralsVerbatim(t *testing.T) {
	literals := []string{
		`"class Foo { int x; }"`,
		`"System.out.println(1L)"`,
		`"a.equals(b) and s.length()"`,
		`"arr[0] = {1, 2}"`,
		`"static int count = 0;"`,
		`"quote \" inside"`,
		`"__STR0__"`,
	}

	var src strings.Builder
	src.WriteString("public class Main {\n    public static void main(String[] args) {\n")
	for _, lit := range literals {
		src.WriteString("        System.out.println(" + lit + ");\n")
	}
	src.WriteString("    }\n}\n")

	code := mustTranslate(t, src.String())

	for _, lit := range literals {
		if !strings.Contains(code, "__log("+lit+");") {
			t.Errorf("literal %s was altered:\n%s", lit, code)
		}
	}
}

func TestTranslateFieldShadowing(t *testing.T) {
	code := mustTranslate(t, `class Counter {
    int count;
    void set(int count) {
        this.count = count;
    }
    int next() {
        count = count + 1;
        return count;
    }
}
public class Main {
    public static void main(String[] args) {
        Counter c = new Counter();
        c.set(5);
        System.out.println(c.next());
    }
}`)

	for _, want := range []string{
		"class Counter {",
		"set(count) {",
		"this.count = count;",
		"this.count = this.count + 1;",
		"return this.count;",
		"let c = new Counter();",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("translation missing %q:\n%s", want, code)
		}
	}
	if strings.Contains(code, "this.this.") {
		t.Errorf("field qualified twice:\n%s", code)
	}
}

func TestTranslateSubclassFields(t *testing.T) {
	code := mustTranslate(t, `class Animal {
}
class Dog extends Animal {
    String name;
    Dog(String n) {
        super();
        name = n;
    }
    String sound() {
        return name + " barks";
    }
}`)

	for _, want := range []string{
		"class Dog extends Animal {",
		"this.name = n;",
		`return this.name + " barks";`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("translation missing %q:\n%s", want, code)
		}
	}
}

func TestTranslateStaticFields(t *testing.T) {
	code := mustTranslate(t, `class Registry {
    static int total = 0;
    static void add(int n) {
        total = total + n;
    }
}
public class Main {
    static int runs = 0;
    public static void main(String[] args) {
        Registry.add(2);
        runs = runs + 1;
        System.out.println(Registry.total + runs);
    }
}`)

	for _, want := range []string{
		"static total = 0;",
		"static add(n) {",
		"Registry.total = Registry.total + n;",
		"let runs = 0;",
		"function main(args) {",
		"Registry.add(2);",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("translation missing %q:\n%s", want, code)
		}
	}
	if strings.Contains(code, "Registry.Registry.") {
		t.Errorf("static field qualified twice:\n%s", code)
	}
}

func TestTranslateArraysAndLoops(t *testing.T) {
	code := mustTranslate(t, `public class Main {
    public static void main(String[] args) {
        int[] numbers = {1, 2, 3};
        int[][] grid = {{1, 2}, {3, 4}};
        for (int n : numbers) {
            System.out.println(n);
        }
        for (int i = 0; i < numbers.length; i++) {
            System.out.print(numbers[i]);
        }
        System.out.println(grid[1][0]);
    }
}`)

	for _, want := range []string{
		"let numbers = [1, 2, 3];",
		"let grid = [[1, 2], [3, 4]];",
		"for (let n of numbers) {",
		"for (let i = 0; i < numbers.length; i++) {",
		"((msg) => __log(msg, false))(__get(numbers, i));",
		"__log(__get(__get(grid, 1), 0));",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("translation missing %q:\n%s", want, code)
		}
	}
}

func TestTranslateExceptions(t *testing.T) {
	code := mustTranslate(t, `public class Main {
    public static void main(String[] args) {
        try {
            int[] a = new int[2];
            System.out.println(a[5]);
        } catch (ArrayIndexOutOfBoundsException e) {
            System.out.println("caught");
        }
    }
}`)

	for _, want := range []string{
		"try {",
		"let a = new int[2];",
		"__log(__get(a, 5));",
		"catch (e) {",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("translation missing %q:\n%s", want, code)
		}
	}
}

// Two classes that both declare main: only the first is unwrapped, the
// second keeps its class wrapper and its main becomes a static method.
func TestTranslateTwoEntryClasses(t *testing.T) {
	code := mustTranslate(t, `class A {
    static void main(String[] args) {
        System.out.println("A");
    }
}
class B {
    static void main(String[] args) {
        System.out.println("B");
    }
}`)

	if strings.Contains(code, "class A") {
		t.Errorf("class A should be unwrapped:\n%s", code)
	}
	for _, want := range []string{
		"function main(args) {",
		"class B {",
		"static main(args) {",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("translation missing %q:\n%s", want, code)
		}
	}
}

func TestTranslateWithoutMain(t *testing.T) {
	code := mustTranslate(t, `int x = 41;
x++;
System.out.println(x);`)

	for _, want := range []string{"let x = 41;", "__log(x);", "if (typeof main === 'function')"} {
		if !strings.Contains(code, want) {
			t.Errorf("translation missing %q:\n%s", want, code)
		}
	}
}

func TestTranslateMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"}}}{{{",
		"class {",
		"class Main { static void main(String[] args) {",
		`"unterminated`,
		"int[] a = {1, {2};",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			res := Translate(in)
			if !res.OK() {
				t.Errorf("Translate(%q) error = %v", in, res.Err)
			}
		})
	}
}

func TestTranslateWithTrace(t *testing.T) {
	var seen []string
	res := TranslateWith(`System.out.println("x");`, Options{
		Trace: func(stage, code string) {
			seen = append(seen, stage)
		},
	})
	if !res.OK() {
		t.Fatalf("TranslateWith() error = %v", res.Err)
	}

	stages := Stages()
	if len(seen) != len(stages) {
		t.Fatalf("traced %d stages, want %d", len(seen), len(stages))
	}
	for i := range stages {
		if seen[i] != stages[i] {
			t.Errorf("stage %d = %q, want %q", i, seen[i], stages[i])
		}
	}
}

func TestTranslationErrorMessage(t *testing.T) {
	err := &TranslationError{Stage: "erase-types", Message: "boom"}
	if got, want := err.Error(), "erase-types: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTranslateRecoversStagePanic(t *testing.T) {
	stages := []stage{
		{"upper", func(u *unit) { u.code = strings.ToUpper(u.code) }},
		{"explode", func(u *unit) { panic("bad input") }},
		{"never", func(u *unit) { t.Error("stage after a failure ran") }},
	}

	res := run(stages, "x", Options{})
	if res.OK() {
		t.Fatal("expected a failed result")
	}
	if res.Code != "" {
		t.Errorf("Code = %q, want empty", res.Code)
	}
	var terr *TranslationError
	if !errors.As(res.Err, &terr) {
		t.Fatalf("Err has type %T, want *TranslationError", res.Err)
	}
	if terr.Stage != "explode" || terr.Message != "bad input" {
		t.Errorf("Err = %+v, want stage %q and message %q", terr, "explode", "bad input")
	}
}

func TestFieldsOf(t *testing.T) {
	reg := FieldsOf(`public class Point {
    private static int created = 0;
    private final int x;
    private int y = 0;
}`)

	f, ok := reg.Fields("Point")
	if !ok {
		t.Fatal("class Point not registered")
	}
	if len(f.Static) != 1 || f.Static[0] != "created" {
		t.Errorf("Static = %v, want [created]", f.Static)
	}
	if len(f.Instance) != 2 || f.Instance[0] != "x" || f.Instance[1] != "y" {
		t.Errorf("Instance = %v, want [x y]", f.Instance)
	}
}
