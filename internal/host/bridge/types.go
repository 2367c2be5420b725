package bridge

// Marker mirrors one timeline marker on the wire.
type Marker struct {
	Name     string `json:"name"`
	Frame    int64  `json:"frame"`
	Duration int64  `json:"duration"`
}

// Item mirrors one track item on the wire. Name carries the caption text for
// caption tracks.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Start    int64  `json:"start"`
	Duration int64  `json:"duration"`
}

// Folder mirrors one template library folder on the wire.
type Folder struct {
	Name      string     `json:"name"`
	Templates []Template `json:"templates"`
	Folders   []*Folder  `json:"folders"`
}

// Template mirrors one library template on the wire.
type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Component mirrors one composition component on the wire.
type Component struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute mirrors one text-capable component input on the wire.
type Attribute struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// NameArgs requests the open timeline's name.
type NameArgs struct{}

// NameReply carries the open timeline's name.
type NameReply struct {
	Name string `json:"name"`
}

// StartFrameArgs requests the timeline start offset.
type StartFrameArgs struct{}

// StartFrameReply carries the timeline start offset.
type StartFrameReply struct {
	Frame int64 `json:"frame"`
}

// MarkersArgs requests all markers.
type MarkersArgs struct{}

// MarkersReply carries all markers in host order.
type MarkersReply struct {
	Markers []Marker `json:"markers"`
}

// TracksArgs requests the track names of one kind.
type TracksArgs struct {
	Kind string `json:"kind"`
}

// TracksReply carries track names in host order.
type TracksReply struct {
	Names []string `json:"names"`
}

// ItemsArgs requests the items on one track.
type ItemsArgs struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// ItemsReply carries track items in track order.
type ItemsReply struct {
	Items []Item `json:"items"`
}

// DeleteArgs requests batch deletion of items by ID.
type DeleteArgs struct {
	IDs []string `json:"ids"`
}

// DeleteReply acknowledges a deletion batch.
type DeleteReply struct{}

// AppendArgs requests one overlay placement.
type AppendArgs struct {
	TemplateID string `json:"template_id"`
	Start      int64  `json:"start"`
	Duration   int64  `json:"duration"`
	TrackIndex int    `json:"track_index"`
}

// AppendReply carries the new overlay instance's handle.
type AppendReply struct {
	ID string `json:"id"`
}

// LibraryArgs requests the template library tree.
type LibraryArgs struct{}

// LibraryReply carries the template library tree.
type LibraryReply struct {
	Root *Folder `json:"root"`
}

// CompositionArgs requests an overlay's composition components.
type CompositionArgs struct {
	ID string `json:"id"`
}

// CompositionReply carries the composition components.
type CompositionReply struct {
	Components []Component `json:"components"`
}

// SetTextArgs writes text into one component attribute of an overlay.
type SetTextArgs struct {
	ID          string `json:"id"`
	ComponentID string `json:"component_id"`
	Attribute   string `json:"attribute"`
	Text        string `json:"text"`
}

// SetTextReply acknowledges a text write.
type SetTextReply struct{}
