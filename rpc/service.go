package rpc

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/worker"
)

const (
	// RenderMethod is the rpc name of Renderer.Render.
	RenderMethod = "Renderer.Render"
	PingMethod   = "Renderer.Ping"

	TCP  = "tcp"
	HTTP = "http"
)

type RenderRequest struct {
	Bounds         mandelbrot.Bounds
	Rectangle      mandelbrot.Rectangle
	WorkerSettings worker.Settings
}

// RenderReply carries the rendered raster as packed RGB bytes.
type RenderReply struct {
	Bounds mandelbrot.Bounds
	Pix    []byte
}

// Renderer is the rpc service that renders images on behalf of remote callers.
type Renderer struct {
	logger   bslogger.Logger
	rendered atomic.Int64
}

func NewRenderer(debug bool) *Renderer {
	renderer := &Renderer{logger: bslogger.NewLogger("Renderer", bslogger.Normal, nil)}
	if debug {
		renderer.logger = bslogger.NewLogger("Renderer", bslogger.All, nil)
	}
	return renderer
}

// Rendered is the number of requests rendered so far.
func (r *Renderer) Rendered() int64 {
	return r.rendered.Load()
}

// Ping answers so callers can check they reached a Renderer before sending a request.
func (r *Renderer) Ping(request misc.Nothing, reply *misc.Nothing) error {
	r.logger.Debug("Ping")
	return nil
}

// Render renders the requested image. Settings that cannot be rendered are returned to the caller
// as an error.
func (r *Renderer) Render(request RenderRequest, reply *RenderReply) error {
	if err := request.Bounds.Verify(); err != nil {
		return err
	}
	w, err := worker.NewWorker(request.WorkerSettings)
	if err != nil {
		return err
	}

	buffer := w.Render(request.Bounds, request.Rectangle)
	reply.Bounds = buffer.Size
	reply.Pix = buffer.RGB()

	r.rendered.Add(1)
	r.logger.Debugf("Rendered %s of %s", request.Bounds, request.Rectangle)
	return nil
}

// Client is a connection to an rpc server. TcpClient and HttpClient implement it.
type Client interface {
	Connect() error
	Call(method string, request interface{}, reply interface{}) error
	Disconnect() error
}

// NewClient returns an unconnected client for the named transport.
func NewClient(transport string, address string) (Client, error) {
	switch strings.ToLower(transport) {
	case "", TCP:
		client := NewTcpClient(address, "RenderClient")
		return &client, nil
	case HTTP:
		client := NewHttpClient(address, "RenderClient")
		return &client, nil
	}
	return nil, fmt.Errorf("unknown transport %q", transport)
}

// RenderRemote renders request on the tcp server at address.
func RenderRemote(address string, request RenderRequest) (*mandelbrot.Buffer, error) {
	client := NewTcpClient(address, "RenderClient")
	return RenderWith(&client, request)
}

// RenderWith connects client, checks the server is a Renderer, renders request and disconnects
// again.
func RenderWith(client Client, request RenderRequest) (*mandelbrot.Buffer, error) {
	if err := client.Connect(); err != nil {
		return nil, err
	}
	defer client.Disconnect()

	if err := client.Call(PingMethod, misc.Nothing{}, &misc.Nothing{}); err != nil {
		return nil, fmt.Errorf("server does not answer as a renderer - %w", err)
	}

	var reply RenderReply
	if err := client.Call(RenderMethod, request, &reply); err != nil {
		return nil, fmt.Errorf("remote render failed - %w", err)
	}
	return mandelbrot.BufferFromRGB(reply.Bounds, reply.Pix)
}

// RemoteRenderer renders every image on a server using fixed worker settings.
type RemoteRenderer struct {
	Address   string
	Settings  worker.Settings
	Transport string
}

func (rr *RemoteRenderer) Render(bounds mandelbrot.Bounds, rect mandelbrot.Rectangle) (*mandelbrot.Buffer, error) {
	client, err := NewClient(rr.Transport, rr.Address)
	if err != nil {
		return nil, err
	}
	return RenderWith(client, RenderRequest{Bounds: bounds, Rectangle: rect, WorkerSettings: rr.Settings})
}
