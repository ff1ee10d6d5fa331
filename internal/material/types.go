package material

import "fmt"

// ShaderType is the shader suffix baked into every generated file name
// and descriptor ("sknp" — the skinned geometry shader set).
const ShaderType = "sknp"

// TextureCount is the number of texture slots a sknp material references.
const TextureCount = 7

// Fixed descriptor values shared by every generated sknp material.
const (
	defaultWidth       = 2048
	defaultHeight      = 2048
	defaultGlueFlags   = "0x56000420"
	defaultGlueFlags2  = "0x0"
	defaultBlendState  = "0xF0000000"
	defaultBlendMask   = "0x4"
	defaultDepthFlags  = "0x17"
	defaultRasterFlags = "0x6"
	defaultUberFlags   = "0x0"
	defaultFeatures    = "0x1F5A92BD"
	defaultSamplers    = "0x1D0300"
	defaultShaderSet   = "0x97E4F7D956E5E6CE"

	depthShadowGUID      = "0x2B93C99C67CC8B51"
	depthPrepassGUID     = "0x1EBD063EA03180C7"
	depthVSMGUID         = "0xF95A7FA9E8DE1A0E"
	depthShadowTightGUID = "0x227C27B608B3646B"
)

// Descriptor is the JSON shape repak expects for a matl asset. Field order
// matches the serialized layout of hand-authored descriptors.
type Descriptor struct {
	Name              string            `json:"name"`
	Width             int               `json:"width"`
	Height            int               `json:"height"`
	Depth             int               `json:"depth"`
	GlueFlags         string            `json:"glueFlags"`
	GlueFlags2        string            `json:"glueFlags2"`
	BlendStates       []string          `json:"blendStates"`
	BlendStateMask    string            `json:"blendStateMask"`
	DepthStencilFlags string            `json:"depthStencilFlags"`
	RasterizerFlags   string            `json:"rasterizerFlags"`
	UberBufferFlags   string            `json:"uberBufferFlags"`
	Features          string            `json:"features"`
	Samplers          string            `json:"samplers"`
	SurfaceProp       string            `json:"surfaceProp"`
	SurfaceProp2      string            `json:"surfaceProp2"`
	ShaderType        string            `json:"shaderType"`
	ShaderSet         string            `json:"shaderSet"`
	Textures          map[string]string `json:"$textures"`
	DepthShadow       string            `json:"$depthShadowMaterial"`
	DepthPrepass      string            `json:"$depthPrepassMaterial"`
	DepthVSM          string            `json:"$depthVSMMaterial"`
	DepthShadowTight  string            `json:"$depthShadowTightMaterial"`
	Colpass           string            `json:"$colpassMaterial"`
	TextureAnimation  string            `json:"$textureAnimation"`
}

// NewDescriptor builds a sknp descriptor for the given material name.
// The full (slash-delimited) name populates the name field and the seven
// texture references; everything else is the fixed template.
func NewDescriptor(name string) *Descriptor {
	textures := make(map[string]string, TextureCount)
	for i := 0; i < TextureCount; i++ {
		textures[fmt.Sprintf("%d", i)] = fmt.Sprintf("texture/%s_%d.rpak", name, i)
	}

	blendStates := make([]string, 8)
	for i := range blendStates {
		blendStates[i] = defaultBlendState
	}

	return &Descriptor{
		Name:              name,
		Width:             defaultWidth,
		Height:            defaultHeight,
		Depth:             0,
		GlueFlags:         defaultGlueFlags,
		GlueFlags2:        defaultGlueFlags2,
		BlendStates:       blendStates,
		BlendStateMask:    defaultBlendMask,
		DepthStencilFlags: defaultDepthFlags,
		RasterizerFlags:   defaultRasterFlags,
		UberBufferFlags:   defaultUberFlags,
		Features:          defaultFeatures,
		Samplers:          defaultSamplers,
		SurfaceProp:       "default",
		SurfaceProp2:      "",
		ShaderType:        ShaderType,
		ShaderSet:         defaultShaderSet,
		Textures:          textures,
		DepthShadow:       depthShadowGUID,
		DepthPrepass:      depthPrepassGUID,
		DepthVSM:          depthVSMGUID,
		DepthShadowTight:  depthShadowTightGUID,
		Colpass:           "0x0",
		TextureAnimation:  "0x0",
	}
}

// BaseName returns the last slash-delimited segment of a material name.
func BaseName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[i+1:]
		}
	}
	return name
}

// PakPath returns the logical rpak path registered in the manifest for a
// material name. Always forward-slashed, independent of the on-disk layout.
func PakPath(name string) string {
	return "material/" + name + "_" + ShaderType + ".rpak"
}
