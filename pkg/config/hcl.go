package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*FileConfig, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	type hclConfig struct {
		Full            *bool    `hcl:"full,optional"`
		Recursive       *bool    `hcl:"recursive,optional"`
		Padding         *int     `hcl:"padding,optional"`
		Ignore          []string `hcl:"ignore,optional"`
		ContinueOnError *bool    `hcl:"continue_on_error,optional"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &FileConfig{
		Full:            hclCfg.Full,
		Recursive:       hclCfg.Recursive,
		Padding:         hclCfg.Padding,
		Ignore:          hclCfg.Ignore,
		ContinueOnError: hclCfg.ContinueOnError,
	}, nil
}
