package main

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/model"
)

const demoFamily = "Go"

// demoComposition is a two second loop: a spinning trimmed ring over a
// gradient backdrop, with a caption that fades in.
func demoComposition() *model.Composition {
	const size = 240
	easeInOut := keyframe.NewEase(0.42, 0, 0.58, 1)
	white := motion.RGB(1, 1, 1)

	caption := model.Layer{
		Name:     "Caption",
		Index:    1,
		Type:     model.LayerText,
		OutFrame: 60,
		Transform: model.Transform{
			Position: model.Const(motion.V2(size/2, 210)),
			Opacity:  model.Keys(keyframe.At(0, 0.0), keyframe.At(20, 100.0)),
		},
		Text: &model.TextData{Document: model.Const(model.TextDocument{
			Text:          "motion",
			FontFamily:    demoFamily,
			FontSize:      28,
			Justification: model.JustifyCenter,
			Tracking:      50,
			FillColor:     &white,
		})},
	}

	ring := model.Layer{
		Name:     "Ring",
		Index:    2,
		Type:     model.LayerShape,
		OutFrame: 60,
		Transform: model.Transform{
			Position: model.Const(motion.V2(size/2, 100)),
			Rotation: model.Keys(keyframe.At(0, 0.0), keyframe.At(60, 360.0)),
		},
		Shapes: []model.ShapeItem{
			&model.Group{Item: model.Item{Name: "Arc"}, Items: []model.ShapeItem{
				&model.Ellipse{Item: model.Item{Name: "Circle"}, Size: model.Const(motion.V2(120, 120))},
				&model.Trim{
					Item: model.Item{Name: "Trim"},
					End: model.Keys(
						keyframe.Keyframe[float64]{Time: 0, Value: 5, Ease: easeInOut},
						keyframe.Keyframe[float64]{Time: 30, Value: 90, Ease: easeInOut},
						keyframe.At(60, 5.0),
					),
				},
				&model.Stroke{
					Item:  model.Item{Name: "Stroke"},
					Color: model.Const(motion.RGB(1, 0.55, 0.1)),
					StrokeStyle: model.StrokeStyle{
						Width: model.Const(12.0),
						Cap:   motion.LineCapRound,
					},
				},
			}},
			&model.Group{Item: model.Item{Name: "Dots"}, Items: []model.ShapeItem{
				&model.Ellipse{
					Item:     model.Item{Name: "Dot"},
					Position: model.Const(motion.V2(0, -30)),
					Size:     model.Const(motion.V2(10, 10)),
				},
				&model.Fill{Item: model.Item{Name: "Fill"}, Color: model.Const(white)},
				&model.Repeater{
					Item:   model.Item{Name: "Repeater"},
					Copies: model.Const(6.0),
					Transform: model.RepeaterTransform{
						Rotation:   model.Const(60.0),
						EndOpacity: model.Const(20.0),
					},
				},
			}},
		},
	}

	backdrop := model.Layer{
		Name:     "Backdrop",
		Index:    3,
		Type:     model.LayerShape,
		OutFrame: 60,
		Shapes: []model.ShapeItem{
			&model.Rectangle{
				Item:     model.Item{Name: "Rectangle"},
				Position: model.Const(motion.V2(size/2, size/2)),
				Size:     model.Const(motion.V2(size, size)),
			},
			&model.GradientFill{
				Item: model.Item{Name: "Gradient"},
				Gradient: model.Gradient{
					Type:     motion.GradientLinear,
					Start:    model.Const(motion.V2(0, 0)),
					End:      model.Const(motion.V2(0, size)),
					NumStops: 2,
					Colors:   model.Const([]float64{0, 0.08, 0.1, 0.2, 1, 0.2, 0.1, 0.3}),
				},
			},
		},
	}

	return &model.Composition{
		Name:      "demo",
		FrameRate: 30,
		EndFrame:  60,
		Width:     size,
		Height:    size,
		Layers:    []model.Layer{caption, ring, backdrop},
	}
}
