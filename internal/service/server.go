// Package service exposes the sampler over gRPC.
package service

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/mh-sampler/gen/samplerpb"
	"github.com/danielpatrickdp/mh-sampler/internal/randsrc"
	"github.com/danielpatrickdp/mh-sampler/internal/sampler"
)

// #region server

// Server implements the SamplerService RPC surface.
type Server struct {
	pb.UnimplementedSamplerServiceServer
}

// NewServer creates a sampler service server.
func NewServer() *Server {
	return &Server{}
}

// RunChain draws one full posterior chain per request. Each request gets its
// own random source, so concurrent requests never interleave draws.
func (s *Server) RunChain(_ context.Context, req *pb.RunChainRequest) (*pb.RunChainResponse, error) {
	cfg := sampler.Config{ProposalScale: req.ProposalScale}
	if cfg.ProposalScale == 0 {
		cfg.ProposalScale = sampler.DefaultProposalScale
	}
	if req.HasSeed {
		cfg.Source = randsrc.Seeded(req.Seed)
	}

	res, err := sampler.Run(int(req.SampleCount), int(req.Successes), int(req.Trials), cfg)
	if err != nil {
		if errors.Is(err, sampler.ErrInvalidArgument) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	log.Printf("[SERVE] chain done: n=%d obs=%d/%d accepted=%d",
		len(res.Chain), req.Successes, req.Trials, res.Accepted)

	return &pb.RunChainResponse{
		Chain:    res.Chain,
		Accepted: int64(res.Accepted),
	}, nil
}

// #endregion server
