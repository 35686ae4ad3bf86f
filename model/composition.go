package model

// Asset is a resource referenced by layers through its ID.
type Asset interface {
	AssetID() string
	isAsset()
}

// Precomp is a nested composition.
type Precomp struct {
	ID     string
	Layers []Layer
}

// AssetID implements Asset.
func (p *Precomp) AssetID() string { return p.ID }

func (*Precomp) isAsset() {}

// Image is a bitmap asset. Only its size matters to the evaluator.
type Image struct {
	ID     string
	Name   string
	Width  float64
	Height float64
}

// AssetID implements Asset.
func (i *Image) AssetID() string { return i.ID }

func (*Image) isAsset() {}

// Composition is a whole animation document.
type Composition struct {
	Name       string
	FrameRate  float64
	StartFrame float64
	EndFrame   float64
	Width      float64
	Height     float64
	Layers     []Layer
	Assets     []Asset
}

// Duration returns the length of the composition in seconds.
func (c *Composition) Duration() float64 {
	if c.FrameRate <= 0 {
		return 0
	}
	return (c.EndFrame - c.StartFrame) / c.FrameRate
}

// Asset returns the asset with the given ID.
func (c *Composition) Asset(id string) (Asset, bool) {
	for _, a := range c.Assets {
		if a.AssetID() == id {
			return a, true
		}
	}
	return nil, false
}

// Precomp returns the precomposition with the given ID.
func (c *Composition) Precomp(id string) (*Precomp, bool) {
	a, ok := c.Asset(id)
	if !ok {
		return nil, false
	}
	p, ok := a.(*Precomp)
	return p, ok
}
