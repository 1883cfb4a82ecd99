package main

import (
	"flag"
	"log"
	"net"
	"os"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/mh-sampler/gen/samplerpb"
	"github.com/danielpatrickdp/mh-sampler/internal/service"
)

// #region main

func main() {
	addr := flag.String("addr", envOr("SAMPLER_ADDR", "localhost:50051"), "listen address")
	flag.Parse()

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen on %s: %v", *addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterSamplerServiceServer(grpcServer, service.NewServer())

	log.Printf("[SERVE] sampler service listening on %s", *addr)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
