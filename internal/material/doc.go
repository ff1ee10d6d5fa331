// Package material builds repak material descriptors and writes the
// per-material boilerplate files (JSON descriptor plus uber shader buffer)
// into the assets tree. Descriptors follow the fixed sknp skin-shader
// template; only the name-derived fields vary per material.
package material
