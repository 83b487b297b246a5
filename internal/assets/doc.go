// Package assets provides embedded CSS styles for PDF rendering.
//
// Styles are compiled into the binary with go:embed and looked up by name,
// so the CLI works without any files on disk. Each style is a standalone
// CSS file under styles/ that is appended to the built-in base style when
// the user selects it.
//
//	styles/
//	└── {name}.css           # CSS styles (e.g., serif.css)
//
// Asset names are validated to prevent path traversal attacks.
package assets
