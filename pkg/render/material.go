package render

import (
	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
)

// ImageID names a texture image. Loading the image is up to the host.
type ImageID string

// AlphaModeKind selects how a material's alpha channel is used.
type AlphaModeKind string

const (
	AlphaOpaque        AlphaModeKind = "opaque"
	AlphaMask          AlphaModeKind = "mask"
	AlphaBlend         AlphaModeKind = "blend"
	AlphaPremultiplied AlphaModeKind = "premultiplied"
	AlphaToCoverage    AlphaModeKind = "alpha_to_coverage"
	AlphaAdd           AlphaModeKind = "add"
	AlphaMultiply      AlphaModeKind = "multiply"
)

// AlphaMode is an alpha handling mode. Cutoff is only meaningful for
// AlphaMask: fragments with alpha below it are discarded.
type AlphaMode struct {
	Mode   AlphaModeKind `json:"mode" yaml:"mode"`
	Cutoff number.Number `json:"cutoff" yaml:"cutoff"`
}

func Opaque() AlphaMode { return AlphaMode{Mode: AlphaOpaque} }

func Mask(cutoff number.Number) AlphaMode { return AlphaMode{Mode: AlphaMask, Cutoff: cutoff} }

// Valid reports whether m names a known mode.
func (m AlphaMode) Valid() bool {
	switch m.Mode {
	case AlphaOpaque, AlphaMask, AlphaBlend, AlphaPremultiplied, AlphaToCoverage, AlphaAdd, AlphaMultiply:
		return true
	}
	return false
}

// Material is a physically based surface description. Materials are
// comparable values and can be used directly as cache keys.
type Material struct {
	BaseColor           Color         `json:"base_color" yaml:"base_color"`
	BaseColorTexture    ImageID       `json:"base_color_texture,omitempty" yaml:"base_color_texture,omitempty"`
	NormalMapTexture    ImageID       `json:"normal_map_texture,omitempty" yaml:"normal_map_texture,omitempty"`
	AlphaMode           AlphaMode     `json:"alpha_mode" yaml:"alpha_mode"`
	Metallic            number.Number `json:"metallic" yaml:"metallic"`
	PerceptualRoughness number.Number `json:"perceptual_roughness" yaml:"perceptual_roughness"`
	UVTransform         geom.Affine2  `json:"uv_transform" yaml:"uv_transform"`
}

// DefaultMaterial returns an opaque white dielectric with medium roughness.
func DefaultMaterial() Material {
	return Material{
		BaseColor:           White,
		AlphaMode:           Opaque(),
		PerceptualRoughness: number.Half,
		UVTransform:         geom.IdentityAffine2(),
	}
}

// WithColor returns the default material tinted c.
func WithColor(c Color) Material {
	m := DefaultMaterial()
	m.BaseColor = c
	return m
}
