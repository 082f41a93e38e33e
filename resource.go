package ngx

import "github.com/gogpu/gputypes"

// SubresourceRange selects the mip levels and array layers of an image
// visible through a view. It mirrors VkImageSubresourceRange.
type SubresourceRange struct {
	AspectMask     AspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// FullRange returns the range covering the first mip level and array layer
// of an image of format f, with the aspect selected by a.
func FullRange(f Format, a gputypes.TextureAspect) SubresourceRange {
	return SubresourceRange{
		AspectMask: AspectFromGPU(a, f),
		LevelCount: 1,
		LayerCount: 1,
	}
}

// ResourceBinding describes a GPU image region bound to an evaluation.
//
// A binding does not own anything: the view and image belong to the
// caller's frame and must stay alive until the evaluation is recorded.
type ResourceBinding struct {
	// View is the image view the engine samples or writes.
	View ImageView
	// Image is the image behind View.
	Image Image
	// Range is the subresource range of Image covered by View.
	Range SubresourceRange
	// Format is the view format.
	Format Format
	// Width and Height are the image dimensions in pixels.
	Width  uint32
	Height uint32
	// ReadWrite marks the resource as written by the engine.
	ReadWrite bool
}

// MakeView builds a binding for an image view.
func MakeView(view ImageView, image Image, rng SubresourceRange, format Format, width, height uint32, readWrite bool) ResourceBinding {
	return ResourceBinding{
		View:      view,
		Image:     image,
		Range:     rng,
		Format:    format,
		Width:     width,
		Height:    height,
		ReadWrite: readWrite,
	}
}

// SetWritable marks the binding as written by the engine.
func (b *ResourceBinding) SetWritable() {
	b.ReadWrite = true
}

// Present reports whether the binding was supplied. A nil binding and a
// binding with a null view are both absent.
func (b *ResourceBinding) Present() bool {
	return b != nil && b.View != NullImageView
}

// Extent returns the binding dimensions.
func (b *ResourceBinding) Extent() Extent2D {
	return Extent2D{Width: b.Width, Height: b.Height}
}

// ValidateBinding classifies a binding. A mandatory binding that is not
// present yields a *ResourceError naming field; an absent optional binding
// is valid and simply not supplied. No structural checks are made, the
// engine validates the resources it receives.
func ValidateBinding(field string, b *ResourceBinding, mandatory bool) error {
	if mandatory && !b.Present() {
		return &ResourceError{Field: field}
	}
	return nil
}
