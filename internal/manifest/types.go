package manifest

// Entry is one asset registration in the pak manifest.
type Entry struct {
	Type string `json:"_type"`
	Path string `json:"_path"`
}

// Asset type discriminators used in manifest entries.
const (
	TypeMaterial = "matl"
	TypeTexture  = "txtr"
	TypeModel    = "mdl_"
	TypeUI       = "ui"
	TypeDataTbl  = "dtbl"
)
