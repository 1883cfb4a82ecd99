// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: sampler.proto

package samplerpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RunChainRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	SampleCount int64 `protobuf:"varint,1,opt,name=sample_count,json=sampleCount,proto3" json:"sample_count,omitempty"`
	Successes   int64 `protobuf:"varint,2,opt,name=successes,proto3" json:"successes,omitempty"`
	Trials      int64 `protobuf:"varint,3,opt,name=trials,proto3" json:"trials,omitempty"`
	// Standard deviation of the random-walk proposal; 0 selects the default.
	ProposalScale float64 `protobuf:"fixed64,4,opt,name=proposal_scale,json=proposalScale,proto3" json:"proposal_scale,omitempty"`
	// Seed for a reproducible chain; only honored when has_seed is true, so a
	// deliberate seed of 0 stays distinguishable from "no seed".
	Seed    uint64 `protobuf:"varint,5,opt,name=seed,proto3" json:"seed,omitempty"`
	HasSeed bool   `protobuf:"varint,6,opt,name=has_seed,json=hasSeed,proto3" json:"has_seed,omitempty"`
}

func (x *RunChainRequest) Reset() {
	*x = RunChainRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_sampler_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RunChainRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunChainRequest) ProtoMessage() {}

func (x *RunChainRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunChainRequest.ProtoReflect.Descriptor instead.
func (*RunChainRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{0}
}

func (x *RunChainRequest) GetSampleCount() int64 {
	if x != nil {
		return x.SampleCount
	}
	return 0
}

func (x *RunChainRequest) GetSuccesses() int64 {
	if x != nil {
		return x.Successes
	}
	return 0
}

func (x *RunChainRequest) GetTrials() int64 {
	if x != nil {
		return x.Trials
	}
	return 0
}

func (x *RunChainRequest) GetProposalScale() float64 {
	if x != nil {
		return x.ProposalScale
	}
	return 0
}

func (x *RunChainRequest) GetSeed() uint64 {
	if x != nil {
		return x.Seed
	}
	return 0
}

func (x *RunChainRequest) GetHasSeed() bool {
	if x != nil {
		return x.HasSeed
	}
	return false
}

type RunChainResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Chain    []float64 `protobuf:"fixed64,1,rep,packed,name=chain,proto3" json:"chain,omitempty"`
	Accepted int64     `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
}

func (x *RunChainResponse) Reset() {
	*x = RunChainResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_sampler_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RunChainResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunChainResponse) ProtoMessage() {}

func (x *RunChainResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunChainResponse.ProtoReflect.Descriptor instead.
func (*RunChainResponse) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{1}
}

func (x *RunChainResponse) GetChain() []float64 {
	if x != nil {
		return x.Chain
	}
	return nil
}

func (x *RunChainResponse) GetAccepted() int64 {
	if x != nil {
		return x.Accepted
	}
	return 0
}

var File_sampler_proto protoreflect.FileDescriptor

var file_sampler_proto_rawDesc = []byte{
	0x0a, 0x0d, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12,
	0x09, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x70, 0x62, 0x22, 0xc0, 0x01, 0x0a, 0x0f, 0x52,
	0x75, 0x6e, 0x43, 0x68, 0x61, 0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x21,
	0x0a, 0x0c, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x43, 0x6f, 0x75, 0x6e,
	0x74, 0x12, 0x1c, 0x0a, 0x09, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x65, 0x73, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x65, 0x73, 0x12,
	0x16, 0x0a, 0x06, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x06, 0x74, 0x72, 0x69, 0x61, 0x6c, 0x73, 0x12, 0x25, 0x0a, 0x0e, 0x70, 0x72, 0x6f, 0x70, 0x6f,
	0x73, 0x61, 0x6c, 0x5f, 0x73, 0x63, 0x61, 0x6c, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x0d, 0x70, 0x72, 0x6f, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x53, 0x63, 0x61, 0x6c, 0x65, 0x12, 0x12,
	0x0a, 0x04, 0x73, 0x65, 0x65, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x04, 0x52, 0x04, 0x73, 0x65,
	0x65, 0x64, 0x12, 0x19, 0x0a, 0x08, 0x68, 0x61, 0x73, 0x5f, 0x73, 0x65, 0x65, 0x64, 0x18, 0x06,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x68, 0x61, 0x73, 0x53, 0x65, 0x65, 0x64, 0x22, 0x44, 0x0a,
	0x10, 0x52, 0x75, 0x6e, 0x43, 0x68, 0x61, 0x69, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x68, 0x61, 0x69, 0x6e, 0x18, 0x01, 0x20, 0x03, 0x28, 0x01,
	0x52, 0x05, 0x63, 0x68, 0x61, 0x69, 0x6e, 0x12, 0x1a, 0x0a, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70,
	0x74, 0x65, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70,
	0x74, 0x65, 0x64, 0x32, 0x55, 0x0a, 0x0e, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x53, 0x65,
	0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x43, 0x0a, 0x08, 0x52, 0x75, 0x6e, 0x43, 0x68, 0x61, 0x69,
	0x6e, 0x12, 0x1a, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x70, 0x62, 0x2e, 0x52, 0x75,
	0x6e, 0x43, 0x68, 0x61, 0x69, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1b, 0x2e,
	0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x70, 0x62, 0x2e, 0x52, 0x75, 0x6e, 0x43, 0x68, 0x61,
	0x69, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x3f, 0x5a, 0x3d, 0x67, 0x69,
	0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x64, 0x61, 0x6e, 0x69, 0x65, 0x6c, 0x70,
	0x61, 0x74, 0x72, 0x69, 0x63, 0x6b, 0x64, 0x70, 0x2f, 0x6d, 0x68, 0x2d, 0x73, 0x61, 0x6d, 0x70,
	0x6c, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x70,
	0x62, 0x3b, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x70, 0x62, 0x62, 0x06, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x33,
}

var (
	file_sampler_proto_rawDescOnce sync.Once
	file_sampler_proto_rawDescData = file_sampler_proto_rawDesc
)

func file_sampler_proto_rawDescGZIP() []byte {
	file_sampler_proto_rawDescOnce.Do(func() {
		file_sampler_proto_rawDescData = protoimpl.X.CompressGZIP(file_sampler_proto_rawDescData)
	})
	return file_sampler_proto_rawDescData
}

var file_sampler_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_sampler_proto_goTypes = []any{
	(*RunChainRequest)(nil),  // 0: samplerpb.RunChainRequest
	(*RunChainResponse)(nil), // 1: samplerpb.RunChainResponse
}
var file_sampler_proto_depIdxs = []int32{
	0, // 0: samplerpb.SamplerService.RunChain:input_type -> samplerpb.RunChainRequest
	1, // 1: samplerpb.SamplerService.RunChain:output_type -> samplerpb.RunChainResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_sampler_proto_init() }
func file_sampler_proto_init() {
	if File_sampler_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_sampler_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*RunChainRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_sampler_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*RunChainResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_sampler_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sampler_proto_goTypes,
		DependencyIndexes: file_sampler_proto_depIdxs,
		MessageInfos:      file_sampler_proto_msgTypes,
	}.Build()
	File_sampler_proto = out.File
	file_sampler_proto_rawDesc = nil
	file_sampler_proto_goTypes = nil
	file_sampler_proto_depIdxs = nil
}
