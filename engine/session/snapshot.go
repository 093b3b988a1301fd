package session

// Snapshot is a serializable view of a session's state.
type Snapshot struct {
	SessionID string           `json:"session_id"`
	Ready     bool             `json:"ready"`
	Playback  PlaybackSnapshot `json:"playback"`
	Camera    CameraSnapshot   `json:"camera"`
	Surface   *ObjectSnapshot  `json:"surface,omitempty"`
	Icons     []IconSnapshot   `json:"icons,omitempty"`
}

// PlaybackSnapshot mirrors playback.State.
type PlaybackSnapshot struct {
	Playing  bool    `json:"playing"`
	Position float64 `json:"position"`
	Duration float64 `json:"duration"`
}

// CameraSnapshot is the camera rig's pose.
type CameraSnapshot struct {
	Position  [3]float32 `json:"position"`
	RotationX float32    `json:"rotation_x"`
	RotationY float32    `json:"rotation_y"`
}

// ObjectSnapshot is a scene node's local transform.
type ObjectSnapshot struct {
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation"`
	Scale    [3]float32 `json:"scale"`
}

// IconSnapshot mirrors overlay.IconState.
type IconSnapshot struct {
	ID             string  `json:"id"`
	Opacity        float32 `json:"opacity"`
	DisplayOpacity float32 `json:"display_opacity"`
	Visible        bool    `json:"visible"`
}
