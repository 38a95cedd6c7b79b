package aiq

import (
	"math/rand/v2"
	"testing"
)

func uniform(v int) Capabilities {
	return Capabilities{U: v, P: v, C: v, R: v, E: v, S: v, Co: v, F: v}
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want Type
	}{
		{"speed executor", Capabilities{U: 75, P: 50, C: 70, R: 50, E: 50, S: 50, Co: 50, F: 50}, SpeedExecutor},
		{"precision analyst", Capabilities{U: 50, P: 80, C: 50, R: 50, E: 75, S: 50, Co: 50, F: 50}, PrecisionAnalyst},
		{"creative innovator", Capabilities{U: 50, P: 50, C: 80, R: 50, E: 50, S: 80, Co: 50, F: 50}, CreativeInnovator},
		{"master prompter", Capabilities{U: 50, P: 50, C: 50, R: 80, E: 50, S: 50, Co: 50, F: 70}, MasterPrompter},
		{"quality guardian", Capabilities{U: 40, P: 75, C: 50, R: 50, E: 75, S: 50, Co: 50, F: 50}, QualityGuardian},
		{"collaborative builder", Capabilities{U: 65, P: 50, C: 50, R: 50, E: 50, S: 50, Co: 75, F: 50}, CollaborativeBuilder},
		{"ai fundamentalist", Capabilities{U: 40, P: 40, C: 40, R: 40, E: 40, S: 40, Co: 40, F: 85}, AIFundamentalist},
		{"balanced", uniform(50), BalancedPractitioner},
		{"all zero", uniform(0), BalancedPractitioner},
		{"all hundred", uniform(100), SpeedExecutor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyType(tt.caps); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyTypeThresholdsAreStrict(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want Type
	}{
		{"speed at boundary", Capabilities{U: 70, C: 66}, BalancedPractitioner},
		{"speed just over", Capabilities{U: 71, C: 66}, SpeedExecutor},
		{"fundamentalist at boundary", Capabilities{F: 75}, BalancedPractitioner},
		{"fundamentalist just over", Capabilities{F: 76}, AIFundamentalist},
		{"collaborative at boundary", Capabilities{Co: 71, U: 60}, BalancedPractitioner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyType(tt.caps); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyTypeFirstMatchWins(t *testing.T) {
	t.Run("speed executor beats precision analyst", func(t *testing.T) {
		c := Capabilities{U: 80, C: 80, P: 80, E: 80}
		if got := ClassifyType(c); got != SpeedExecutor {
			t.Errorf("got %s, want %s", got, SpeedExecutor)
		}
	})

	t.Run("precision analyst shadows quality guardian", func(t *testing.T) {
		c := Capabilities{P: 80, E: 75}
		if got := ClassifyType(c); got != PrecisionAnalyst {
			t.Errorf("got %s, want %s", got, PrecisionAnalyst)
		}
	})

	t.Run("quality guardian below precision threshold", func(t *testing.T) {
		c := Capabilities{P: 72, E: 75}
		if got := ClassifyType(c); got != QualityGuardian {
			t.Errorf("got %s, want %s", got, QualityGuardian)
		}
	})

	t.Run("master prompter beats fundamentalist", func(t *testing.T) {
		c := Capabilities{R: 80, F: 90}
		if got := ClassifyType(c); got != MasterPrompter {
			t.Errorf("got %s, want %s", got, MasterPrompter)
		}
	})
}

func TestClassifyTypeTotal(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	for i := 0; i < 1000; i++ {
		c := Capabilities{
			U: r.IntN(101), P: r.IntN(101), C: r.IntN(101), R: r.IntN(101),
			E: r.IntN(101), S: r.IntN(101), Co: r.IntN(101), F: r.IntN(101),
		}
		if got := ClassifyType(c); !got.Valid() {
			t.Fatalf("invalid type %q for %+v", got, c)
		}
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(string(typ))
		if err != nil {
			t.Errorf("ParseType(%q): %v", typ, err)
		}
		if got != typ {
			t.Errorf("expected %s, got %s", typ, got)
		}
	}
	if _, err := ParseType("prompt_wizard"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestTypeInfoCoversEveryType(t *testing.T) {
	if len(Types()) != 8 {
		t.Fatalf("expected 8 types, got %d", len(Types()))
	}
	for _, typ := range Types() {
		info, ok := LookupTypeInfo(typ)
		if !ok {
			t.Errorf("missing metadata for %s", typ)
			continue
		}
		if info.Type != typ || info.Name == "" || info.NameKo == "" || info.Emoji == "" {
			t.Errorf("incomplete metadata for %s: %+v", typ, info)
		}
		if len(info.Strengths) == 0 || len(info.Recommendations) == 0 {
			t.Errorf("%s: expected strengths and recommendations", typ)
		}
	}
}

func TestLookupTypeInfoReturnsCopy(t *testing.T) {
	info, _ := LookupTypeInfo(SpeedExecutor)
	info.Strengths[0] = "changed"

	again, _ := LookupTypeInfo(SpeedExecutor)
	if again.Strengths[0] == "changed" {
		t.Error("metadata table was mutated through a lookup")
	}
}
