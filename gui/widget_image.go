package gui

const imageInset float32 = 6

// ImageFit chooses how an image is scaled into its container.
type ImageFit uint8

const (
	FitStretch ImageFit = iota // fill the container, ignoring aspect ratio
	FitContain                 // largest size that fits, letterboxed
	FitCover                   // smallest size that covers, cropped
)

func (f ImageFit) String() string {
	switch f {
	case FitContain:
		return "contain"
	case FitCover:
		return "cover"
	}
	return "stretch"
}

// FitRect places an image of the given size into container. Contain and
// Cover keep the aspect ratio and centre the result; sizes are truncated
// to whole pixels.
func FitRect(img Vec2, container Rect, fit ImageFit) Rect {
	if fit == FitStretch || img.X <= 0 || img.Y <= 0 || container.W <= 0 || container.H <= 0 {
		return container
	}
	containerRatio := container.W / container.H
	imageRatio := img.X / img.Y

	w, h := container.W, container.H
	wider := imageRatio > containerRatio
	if (fit == FitContain) == wider {
		h = float32(int(container.W / imageRatio))
	} else {
		w = float32(int(container.H * imageRatio))
	}
	return Rect{
		X: container.X + (container.W-w)/2,
		Y: container.Y + (container.H-h)/2,
		W: w,
		H: h,
	}
}

// Image draws a texture of the given pixel size inside a "panel" frame and
// returns the rect the image occupies. Cover-fitted images are clipped to
// the frame. WithImageFit picks the fit, WithFlipY flips render targets.
func (ctx *Context) Image(texture uint32, size Vec2, bounds Rect, opts ...Option) Rect {
	o := applyOptions(opts)
	p := ctx.painter
	ctx.styles.Draw(p, "panel", bounds, "", NoIcon)

	inner := bounds.Expand(-imageInset)
	r := FitRect(size, inner, GetOpt(o, OptImageFit))

	p.Save()
	p.IntersectScissor(inner.X, inner.Y, inner.W, inner.H)
	p.DrawImage(texture, r, GetOpt(o, OptFlipY))
	p.Restore()
	return r
}
