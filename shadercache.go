package shadercache

import _ "embed"

//go:embed VERSION
var Version string

//go:embed shadercache.toml
var DefaultConfig string
