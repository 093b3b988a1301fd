package playback

// HolderBuilderOption is a functional option for configuring a Holder.
type HolderBuilderOption func(*holder)

// WithNotifier sets the receiver of icon notifications, usually the overlay controller.
//
// Parameters:
//   - n: the notifier
//
// Returns:
//   - HolderBuilderOption: option function to apply
func WithNotifier(n Notifier) HolderBuilderOption {
	return func(h *holder) {
		h.notifier = n
	}
}
