package bridge

import (
	"context"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"titlesync/internal/host"
	"titlesync/internal/timeline"
)

// serviceName is the RPC service the editor shim registers.
const serviceName = "Timeline"

// Client provides RPC access to the editor shim. It implements host.Host.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

var _ host.Host = (*Client)(nil)

// Dial connects to the bridge socket.
func Dial(path string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	conn, err := net.DialTimeout("unix", path, timeout)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// call performs one RPC unless the context is already done. The wire has no
// mid-call cancellation; operations complete synchronously or fail.
func (c *Client) call(ctx context.Context, method string, args, reply any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return mapError(c.client.Call(serviceName+"."+method, args, reply))
}

// mapError restores sentinel identity lost on the wire.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if err.Error() == host.ErrNoTimeline.Error() {
		return host.ErrNoTimeline
	}
	return err
}

func (c *Client) TimelineName(ctx context.Context) (string, error) {
	var reply NameReply
	if err := c.call(ctx, "Name", NameArgs{}, &reply); err != nil {
		return "", err
	}
	return reply.Name, nil
}

func (c *Client) StartFrame(ctx context.Context) (int64, error) {
	var reply StartFrameReply
	if err := c.call(ctx, "StartFrame", StartFrameArgs{}, &reply); err != nil {
		return 0, err
	}
	return reply.Frame, nil
}

func (c *Client) Markers(ctx context.Context) ([]timeline.Marker, error) {
	var reply MarkersReply
	if err := c.call(ctx, "ListMarkers", MarkersArgs{}, &reply); err != nil {
		return nil, err
	}
	out := make([]timeline.Marker, 0, len(reply.Markers))
	for _, m := range reply.Markers {
		out = append(out, timeline.Marker{Name: m.Name, Frame: m.Frame, Duration: m.Duration})
	}
	return out, nil
}

func (c *Client) TrackNames(ctx context.Context, kind timeline.TrackKind) ([]string, error) {
	var reply TracksReply
	if err := c.call(ctx, "ListTracks", TracksArgs{Kind: string(kind)}, &reply); err != nil {
		return nil, err
	}
	return reply.Names, nil
}

func (c *Client) TrackItems(ctx context.Context, kind timeline.TrackKind, index int) ([]timeline.TrackItem, error) {
	var reply ItemsReply
	if err := c.call(ctx, "ListItems", ItemsArgs{Kind: string(kind), Index: index}, &reply); err != nil {
		return nil, err
	}
	out := make([]timeline.TrackItem, 0, len(reply.Items))
	for _, item := range reply.Items {
		out = append(out, timeline.TrackItem{ID: item.ID, Name: item.Name, Start: item.Start, Duration: item.Duration})
	}
	return out, nil
}

func (c *Client) DeleteItems(ctx context.Context, refs []host.ItemRef) error {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, string(ref))
	}
	var reply DeleteReply
	return c.call(ctx, "DeleteItems", DeleteArgs{IDs: ids}, &reply)
}

func (c *Client) AppendOverlay(ctx context.Context, p host.Placement) (host.OverlayRef, error) {
	args := AppendArgs{TemplateID: p.TemplateID, Start: p.Start, Duration: p.Duration, TrackIndex: p.TrackIndex}
	var reply AppendReply
	if err := c.call(ctx, "AppendOverlay", args, &reply); err != nil {
		return "", err
	}
	return host.OverlayRef(reply.ID), nil
}

func (c *Client) TemplateLibrary(ctx context.Context) (*host.TemplateFolder, error) {
	var reply LibraryReply
	if err := c.call(ctx, "TemplateLibrary", LibraryArgs{}, &reply); err != nil {
		return nil, err
	}
	return folderFromWire(reply.Root), nil
}

func (c *Client) OverlayComposition(ctx context.Context, ref host.OverlayRef) ([]host.Component, error) {
	var reply CompositionReply
	if err := c.call(ctx, "Composition", CompositionArgs{ID: string(ref)}, &reply); err != nil {
		return nil, err
	}
	out := make([]host.Component, 0, len(reply.Components))
	for _, comp := range reply.Components {
		attrs := make([]host.TextAttribute, 0, len(comp.Attributes))
		for _, attr := range comp.Attributes {
			attrs = append(attrs, host.TextAttribute{Name: attr.Name, Visible: attr.Visible})
		}
		out = append(out, host.Component{ID: comp.ID, Name: comp.Name, Attributes: attrs})
	}
	return out, nil
}

func (c *Client) SetComponentText(ctx context.Context, ref host.OverlayRef, target host.TextTarget, text string) error {
	args := SetTextArgs{ID: string(ref), ComponentID: target.ComponentID, Attribute: target.Attribute, Text: text}
	var reply SetTextReply
	return c.call(ctx, "SetText", args, &reply)
}

func folderFromWire(f *Folder) *host.TemplateFolder {
	if f == nil {
		return nil
	}
	out := &host.TemplateFolder{Name: f.Name}
	for _, tmpl := range f.Templates {
		out.Templates = append(out.Templates, host.TemplateRef{ID: tmpl.ID, Name: tmpl.Name})
	}
	for _, sub := range f.Folders {
		out.Folders = append(out.Folders, folderFromWire(sub))
	}
	return out
}
