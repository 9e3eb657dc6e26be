package handler

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"testing"
)

var (
	protoPackage = regexp.MustCompile(`(?m)^package\s+([\w.]+);`)
	protoService = regexp.MustCompile(`(?m)^service\s+(\w+)\s*\{`)
	protoRPC     = regexp.MustCompile(`(?m)^\s*rpc\s+(\w+)\s*\(\s*google\.protobuf\.Struct\s*\)\s*returns\s*\(\s*google\.protobuf\.Struct\s*\)\s*;`)
)

func TestSessionServiceDesc_MatchesProto(t *testing.T) {
	meta, ok := SessionServiceDesc.Metadata.(string)
	if !ok {
		t.Fatalf("SessionServiceDesc.Metadata is %T, want string", SessionServiceDesc.Metadata)
	}
	data, err := os.ReadFile(filepath.Join("..", "proto", filepath.FromSlash(meta)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", SessionServiceDesc.Metadata, err)
	}
	src := string(data)

	pkg := protoPackage.FindStringSubmatch(src)
	svc := protoService.FindStringSubmatch(src)
	if pkg == nil || svc == nil {
		t.Fatal("proto file has no package or service declaration")
	}
	if got := pkg[1] + "." + svc[1]; got != SessionServiceName {
		t.Errorf("proto service = %s, want %s", got, SessionServiceName)
	}

	var rpcs []string
	for _, m := range protoRPC.FindAllStringSubmatch(src, -1) {
		rpcs = append(rpcs, m[1])
	}
	var methods []string
	for _, m := range SessionServiceDesc.Methods {
		methods = append(methods, m.MethodName)
	}
	slices.Sort(rpcs)
	slices.Sort(methods)
	if !slices.Equal(rpcs, methods) {
		t.Errorf("proto rpcs = %v\ndescriptor methods = %v", rpcs, methods)
	}
	if len(SessionServiceDesc.Streams) != 0 {
		t.Errorf("descriptor has %d streams, proto declares none", len(SessionServiceDesc.Streams))
	}
}
