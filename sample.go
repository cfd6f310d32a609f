package dunoslide

import _ "embed"

// Sample is a presentation showing every layout.
//
//go:embed sample.toml
var Sample []byte
