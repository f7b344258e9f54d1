package schema

import (
	"fmt"

	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// hclSnapshot mirrors Snapshot with transitions as labelled blocks:
//
//	transition "A" {
//	  symbol = "1"
//	  to     = "B"
//	}
type hclSnapshot struct {
	Version     int              `hcl:"version"`
	Alphabet    []string         `hcl:"alphabet"`
	States      []string         `hcl:"states"`
	Initial     *string          `hcl:"initial"`
	Finals      []string         `hcl:"finals"`
	Transitions []*hclTransition `hcl:"transition,block"`
}

type hclTransition struct {
	From   string `hcl:"from,label"`
	Symbol string `hcl:"symbol"`
	To     string `hcl:"to"`
}

func encodeHCL(s *Snapshot) ([]byte, error) {
	hs := hclSnapshot{
		Version:  s.Version,
		Alphabet: nonNil(s.Alphabet),
		States:   nonNil(s.States),
		Finals:   nonNil(s.Finals),
	}
	if s.Initial != "" {
		initial := s.Initial
		hs.Initial = &initial
	}
	for _, t := range s.Transitions {
		hs.Transitions = append(hs.Transitions, &hclTransition{From: t.From, Symbol: t.Symbol, To: t.To})
	}

	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(&hs, f.Body())
	return f.Bytes(), nil
}

func decodeHCL(data []byte) (*Snapshot, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, "artifact.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse snapshot: %w", diags)
	}

	var hs hclSnapshot
	if diags := gohcl.DecodeBody(file.Body, nil, &hs); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode snapshot: %w", diags)
	}

	s := &Snapshot{
		Version:  hs.Version,
		Alphabet: hs.Alphabet,
		States:   hs.States,
		Finals:   hs.Finals,
	}
	if hs.Initial != nil {
		s.Initial = *hs.Initial
	}
	for _, t := range hs.Transitions {
		s.Transitions = append(s.Transitions, domain.Transition{From: t.From, Symbol: t.Symbol, To: t.To})
	}
	return s, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
