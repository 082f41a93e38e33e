package ngx

// Handles
//
// These opaque values carry raw Vulkan and NGX handles across the bridge.
// They are non-owning: the caller's frame-recording code creates and
// destroys the underlying objects, the bridge only borrows them for the
// duration of a single call. Handles are uint64 so that both dispatchable
// (pointer) and non-dispatchable (64-bit) Vulkan handles fit.

// ImageView is a raw VkImageView handle.
type ImageView uint64

// Image is a raw VkImage handle.
type Image uint64

// CommandBuffer is a raw VkCommandBuffer the evaluation records into.
type CommandBuffer uint64

// Device is a raw VkDevice handle.
type Device uint64

// Instance is a raw VkInstance handle.
type Instance uint64

// PhysicalDevice is a raw VkPhysicalDevice handle.
type PhysicalDevice uint64

// FeatureHandle identifies a feature instantiated by the engine.
type FeatureHandle uint64

// Null handles.
const (
	NullImageView     ImageView     = 0
	NullImage         Image         = 0
	NullCommandBuffer CommandBuffer = 0
	NullDevice        Device        = 0
	NullFeature       FeatureHandle = 0
)

// Extent2D is a width/height pair in pixels.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// Coordinates is a 2D pixel offset (a subrect base).
type Coordinates struct {
	X uint32
	Y uint32
}
