package transpile

// modifiers are Java keywords with no JavaScript counterpart. They are
// removed wherever they appear as whole words.
var modifiers = []string{
	"public",
	"private",
	"protected",
	"final",
	"abstract",
	"synchronized",
	"volatile",
	"transient",
	"native",
	"strictfp",
	"throws",
}

// controlKeywords look like method headers (`if (x) {`) but must never be
// rewritten as one.
var controlKeywords = map[string]bool{
	"if":     true,
	"for":    true,
	"while":  true,
	"catch":  true,
	"switch": true,
	"try":    true,
}

// declarationTypes are the type tokens erased from local declarations, in
// addition to any capitalised identifier.
var declarationTypes = []string{
	"int",
	"long",
	"double",
	"float",
	"boolean",
	"char",
	"String",
	"var",
	"void",
}

// notTypes are capitalised words that look like type names but are not.
var notTypes = map[string]bool{
	"Return": true,
	"Public": true,
	"Static": true,
	"Class":  true,
	"New":    true,
	"System": true,
}

// typeLeaders are the keywords after which a capitalised word names a type
// that must be kept (`new Foo`, `class Foo`).
var typeLeaders = []string{"class", "new", "extends", "implements"}

// arrayTypes mark a subscript as part of a type (`new int[3]`) rather than an
// element access.
var arrayTypes = map[string]bool{
	"int":     true,
	"String":  true,
	"double":  true,
	"float":   true,
	"long":    true,
	"boolean": true,
	"char":    true,
}
