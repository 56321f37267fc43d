package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/coordinator"
	"mandelbrot/misc"
	"mandelbrot/rpc"
)

var (
	blendSpace, remoteAddress, serveAddress, settingsFile, strategy, transport string
	maxIterations                                                              uint
	superSampling, workerCount                                                 int
	debug                                                                      bool
)

// server is satisfied by both rpc transports.
type server interface {
	Address() string
	Run() error
	Stop() error
}

func main() {
	logger := bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil)
	args := parseArguments()

	if serveAddress != "" {
		startServer(&logger)
		return
	}
	startRender(&logger, args)
}

func startRender(logger *bslogger.Logger, args []string) {
	settings := buildSettings(logger, args)

	c, err := coordinator.NewCoordinator(settings)
	misc.CheckError(err, logger, misc.Fatal)

	paths, err := c.Run()
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Wrote %d image(s), last one to %s", len(paths), paths[len(paths)-1])
}

func startServer(logger *bslogger.Logger) {
	renderer := rpc.NewRenderer(debug)

	var s server
	switch transport {
	case rpc.HTTP:
		httpServer := rpc.NewHttpServer(renderer, serveAddress, "RenderServer")
		s = &httpServer
	case rpc.TCP:
		tcpServer := rpc.NewTcpServer(renderer, serveAddress, "RenderServer")
		s = &tcpServer
	default:
		logger.Fatalf("Unknown transport %q", transport)
	}
	misc.CheckError(s.Run(), logger, misc.Fatal)

	// Serve until interrupted
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	misc.CheckError(s.Stop(), logger, misc.Warning)
	logger.Infof("Rendered %d request(s)", renderer.Rendered())
}
