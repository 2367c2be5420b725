package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"titlesync/internal/host"
	"titlesync/internal/logging"
	"titlesync/internal/timeline"
)

// Server exposes a Host implementation as the "Timeline" JSON-RPC service
// over a unix domain socket.
type Server struct {
	path     string
	listener net.Listener
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the bridge server at the given socket path.
func NewServer(ctx context.Context, path string, h host.Host, logger *slog.Logger) (*Server, error) {
	if h == nil {
		return nil, errors.New("bridge server requires a host")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	if err := rpcServer.RegisterName(serviceName, &service{host: h, ctx: ctx}); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	srv := &Server{
		path:     path,
		listener: listener,
		logger:   logging.NewComponentLogger(logger, "bridge"),
		ctx:      serverCtx,
		cancel:   cancel,
	}
	srv.serve(rpcServer)
	return srv, nil
}

func (s *Server) serve(rpcServer *rpc.Server) {
	s.logger.Debug("bridge listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket", logging.String("socket", s.path), logging.Error(err))
	}
}

// service adapts a Host to the wire shapes.
type service struct {
	host host.Host
	ctx  context.Context
}

func (s *service) Name(_ *NameArgs, reply *NameReply) error {
	name, err := s.host.TimelineName(s.ctx)
	if err != nil {
		return err
	}
	reply.Name = name
	return nil
}

func (s *service) StartFrame(_ *StartFrameArgs, reply *StartFrameReply) error {
	frame, err := s.host.StartFrame(s.ctx)
	if err != nil {
		return err
	}
	reply.Frame = frame
	return nil
}

func (s *service) ListMarkers(_ *MarkersArgs, reply *MarkersReply) error {
	markers, err := s.host.Markers(s.ctx)
	if err != nil {
		return err
	}
	reply.Markers = make([]Marker, 0, len(markers))
	for _, m := range markers {
		reply.Markers = append(reply.Markers, Marker{Name: m.Name, Frame: m.Frame, Duration: m.Duration})
	}
	return nil
}

func (s *service) ListTracks(args *TracksArgs, reply *TracksReply) error {
	kind := timeline.TrackKind(args.Kind)
	if !kind.Valid() {
		return fmt.Errorf("unknown track kind %q", args.Kind)
	}
	names, err := s.host.TrackNames(s.ctx, kind)
	if err != nil {
		return err
	}
	reply.Names = names
	return nil
}

func (s *service) ListItems(args *ItemsArgs, reply *ItemsReply) error {
	kind := timeline.TrackKind(args.Kind)
	if !kind.Valid() {
		return fmt.Errorf("unknown track kind %q", args.Kind)
	}
	items, err := s.host.TrackItems(s.ctx, kind, args.Index)
	if err != nil {
		return err
	}
	reply.Items = make([]Item, 0, len(items))
	for _, item := range items {
		reply.Items = append(reply.Items, Item{ID: item.ID, Name: item.Name, Start: item.Start, Duration: item.Duration})
	}
	return nil
}

func (s *service) DeleteItems(args *DeleteArgs, _ *DeleteReply) error {
	refs := make([]host.ItemRef, 0, len(args.IDs))
	for _, id := range args.IDs {
		refs = append(refs, host.ItemRef(id))
	}
	return s.host.DeleteItems(s.ctx, refs)
}

func (s *service) AppendOverlay(args *AppendArgs, reply *AppendReply) error {
	ref, err := s.host.AppendOverlay(s.ctx, host.Placement{
		TemplateID: args.TemplateID,
		Start:      args.Start,
		Duration:   args.Duration,
		TrackIndex: args.TrackIndex,
	})
	if err != nil {
		return err
	}
	reply.ID = string(ref)
	return nil
}

func (s *service) TemplateLibrary(_ *LibraryArgs, reply *LibraryReply) error {
	root, err := s.host.TemplateLibrary(s.ctx)
	if err != nil {
		return err
	}
	reply.Root = folderToWire(root)
	return nil
}

func (s *service) Composition(args *CompositionArgs, reply *CompositionReply) error {
	components, err := s.host.OverlayComposition(s.ctx, host.OverlayRef(args.ID))
	if err != nil {
		return err
	}
	reply.Components = make([]Component, 0, len(components))
	for _, comp := range components {
		attrs := make([]Attribute, 0, len(comp.Attributes))
		for _, attr := range comp.Attributes {
			attrs = append(attrs, Attribute{Name: attr.Name, Visible: attr.Visible})
		}
		reply.Components = append(reply.Components, Component{ID: comp.ID, Name: comp.Name, Attributes: attrs})
	}
	return nil
}

func (s *service) SetText(args *SetTextArgs, _ *SetTextReply) error {
	target := host.TextTarget{ComponentID: args.ComponentID, Attribute: args.Attribute}
	return s.host.SetComponentText(s.ctx, host.OverlayRef(args.ID), target, args.Text)
}

func folderToWire(f *host.TemplateFolder) *Folder {
	if f == nil {
		return nil
	}
	out := &Folder{Name: f.Name}
	for _, tmpl := range f.Templates {
		out.Templates = append(out.Templates, Template{ID: tmpl.ID, Name: tmpl.Name})
	}
	for _, sub := range f.Folders {
		out.Folders = append(out.Folders, folderToWire(sub))
	}
	return out
}
