package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// HttpServer serves an rpc object over HTTP at rpc.DefaultRPCPath. Each server gets its own mux so
// several can run in one process.
type HttpServer struct {
	address  string
	listener net.Listener
	mux      *http.ServeMux
	object   interface{}
	server   *http.Server
	stopOnce *sync.Once

	Logger bslogger.Logger
	Name   string
	WG     *sync.WaitGroup
}

func NewHttpServer(object interface{}, address string, name string) HttpServer {
	return HttpServer{
		address:  address,
		mux:      http.NewServeMux(),
		object:   object,
		stopOnce: &sync.Once{},
		Logger:   bslogger.NewLogger(name, bslogger.Normal, nil),
		Name:     name,
		WG:       &sync.WaitGroup{},
	}
}

func (hs *HttpServer) Address() string {
	return hs.address
}

func (hs *HttpServer) Run() error {
	handler := rpc.NewServer()
	err := handler.Register(hs.object)
	if err != nil {
		hs.Logger.Error("Registering object")
		return err
	}
	hs.mux.Handle(rpc.DefaultRPCPath, handler)

	hs.listener, err = net.Listen("tcp", hs.address)
	if err != nil {
		hs.Logger.Errorf("Listening at address %s", hs.address)
		return err
	}
	hs.address = hs.listener.Addr().String()

	// Serve until Stop is called
	hs.server = &http.Server{Addr: hs.address, Handler: hs.mux, ReadHeaderTimeout: 10 * time.Second}
	hs.WG.Add(1)
	go func() {
		defer hs.WG.Done()
		if err := hs.server.Serve(hs.listener); !errors.Is(err, http.ErrServerClosed) {
			hs.Logger.Errorf("Error serving at address %s - %s", hs.address, err)
		}
	}()

	hs.Logger.Infof("Running server at address %s", hs.address)
	return nil
}

// Stop shuts the server down and waits for Serve to return. Stopping a stopped server does nothing.
func (hs *HttpServer) Stop() error {
	if hs.server == nil {
		return fmt.Errorf("server at address %s is not running", hs.address)
	}

	var err error
	hs.stopOnce.Do(func() {
		hs.Logger.Infof("Shutting down server at address %s", hs.address)
		if err = hs.server.Shutdown(context.Background()); err != nil {
			hs.Logger.Errorf("Shutting down server at address %s", hs.address)
		}
	})
	if err != nil {
		return err
	}
	hs.WG.Wait()
	return nil
}
