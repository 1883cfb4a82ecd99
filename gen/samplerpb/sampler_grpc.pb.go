// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: sampler.proto

package samplerpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	SamplerService_RunChain_FullMethodName = "/samplerpb.SamplerService/RunChain"
)

// SamplerServiceClient is the client API for SamplerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SamplerService exposes posterior chain sampling over gRPC. The service is
// a thin marshalling layer: it hands the four inputs to the sampler and
// returns the chain.
type SamplerServiceClient interface {
	RunChain(ctx context.Context, in *RunChainRequest, opts ...grpc.CallOption) (*RunChainResponse, error)
}

type samplerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSamplerServiceClient(cc grpc.ClientConnInterface) SamplerServiceClient {
	return &samplerServiceClient{cc}
}

func (c *samplerServiceClient) RunChain(ctx context.Context, in *RunChainRequest, opts ...grpc.CallOption) (*RunChainResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunChainResponse)
	err := c.cc.Invoke(ctx, SamplerService_RunChain_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SamplerServiceServer is the server API for SamplerService service.
// All implementations must embed UnimplementedSamplerServiceServer
// for forward compatibility
//
// SamplerService exposes posterior chain sampling over gRPC. The service is
// a thin marshalling layer: it hands the four inputs to the sampler and
// returns the chain.
type SamplerServiceServer interface {
	RunChain(context.Context, *RunChainRequest) (*RunChainResponse, error)
	mustEmbedUnimplementedSamplerServiceServer()
}

// UnimplementedSamplerServiceServer must be embedded to have forward compatible implementations.
type UnimplementedSamplerServiceServer struct {
}

func (UnimplementedSamplerServiceServer) RunChain(context.Context, *RunChainRequest) (*RunChainResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunChain not implemented")
}
func (UnimplementedSamplerServiceServer) mustEmbedUnimplementedSamplerServiceServer() {}

// UnsafeSamplerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SamplerServiceServer will
// result in compilation errors.
type UnsafeSamplerServiceServer interface {
	mustEmbedUnimplementedSamplerServiceServer()
}

func RegisterSamplerServiceServer(s grpc.ServiceRegistrar, srv SamplerServiceServer) {
	s.RegisterService(&SamplerService_ServiceDesc, srv)
}

func _SamplerService_RunChain_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunChainRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServiceServer).RunChain(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SamplerService_RunChain_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServiceServer).RunChain(ctx, req.(*RunChainRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SamplerService_ServiceDesc is the grpc.ServiceDesc for SamplerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SamplerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "samplerpb.SamplerService",
	HandlerType: (*SamplerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunChain",
			Handler:    _SamplerService_RunChain_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sampler.proto",
}
