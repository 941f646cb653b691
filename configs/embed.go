package configs

import _ "embed"

// Application holds the default application.yml bundled into the binary.
//
//go:embed application.yml
var Application []byte

// Messages holds the default messages.yml bundled into the binary.
//
//go:embed messages.yml
var Messages []byte
