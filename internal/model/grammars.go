package model

// Grammars returns the built-in list of tree-sitter grammar files published
// in the tree-sitter-wasms package. The order carries no meaning; every
// download is independent.
func Grammars() []string {
	return []string{
		"tree-sitter-bash.wasm",
		"tree-sitter-c.wasm",
		"tree-sitter-c_sharp.wasm",
		"tree-sitter-cpp.wasm",
		"tree-sitter-css.wasm",
		"tree-sitter-dart.wasm",
		"tree-sitter-elisp.wasm",
		"tree-sitter-elixir.wasm",
		"tree-sitter-elm.wasm",
		"tree-sitter-embedded_template.wasm",
		"tree-sitter-go.wasm",
		"tree-sitter-html.wasm",
		"tree-sitter-java.wasm",
		"tree-sitter-javascript.wasm",
		"tree-sitter-json.wasm",
		"tree-sitter-kotlin.wasm",
		"tree-sitter-lua.wasm",
		"tree-sitter-objc.wasm",
		"tree-sitter-ocaml.wasm",
		"tree-sitter-php.wasm",
		"tree-sitter-python.wasm",
		"tree-sitter-ql.wasm",
		"tree-sitter-rescript.wasm",
		"tree-sitter-ruby.wasm",
		"tree-sitter-rust.wasm",
		"tree-sitter-scala.wasm",
		"tree-sitter-solidity.wasm",
		"tree-sitter-swift.wasm",
		"tree-sitter-systemrdl.wasm",
		"tree-sitter-tlaplus.wasm",
		"tree-sitter-toml.wasm",
		"tree-sitter-tsx.wasm",
		"tree-sitter-typescript.wasm",
		"tree-sitter-vue.wasm",
		"tree-sitter-yaml.wasm",
		"tree-sitter-zig.wasm",
	}
}
