package service

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/danielpatrickdp/mh-sampler/gen/samplerpb"
	"github.com/danielpatrickdp/mh-sampler/internal/sampler"
)

// #region types
// RunParams carries the sampling inputs for a remote run. A nil Seed means
// the server self-seeds and the run is not replayable.
type RunParams struct {
	SampleCount   int
	Successes     int
	Trials        int
	ProposalScale float64
	Seed          *uint64
}
// #endregion types

// #region client-struct
// Client wraps the gRPC connection to a sampler service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.SamplerServiceClient
}
// #endregion client-struct

// #region constructor
// NewClient connects to a sampler gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewSamplerServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.SamplerServiceClient) *Client {
	return &Client{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
// #endregion close

// #region run-chain
// RunChain requests one full posterior chain from the remote sampler.
func (c *Client) RunChain(ctx context.Context, p RunParams) (sampler.Result, error) {
	req := &pb.RunChainRequest{
		SampleCount:   int64(p.SampleCount),
		Successes:     int64(p.Successes),
		Trials:        int64(p.Trials),
		ProposalScale: p.ProposalScale,
	}
	if p.Seed != nil {
		req.Seed = *p.Seed
		req.HasSeed = true
	}

	resp, err := c.client.RunChain(ctx, req)
	if err != nil {
		return sampler.Result{}, fmt.Errorf("run chain rpc: %w", err)
	}

	return sampler.Result{
		Chain:    resp.Chain,
		Accepted: int(resp.Accepted),
	}, nil
}
// #endregion run-chain
