package lecture

import "testing"

const sampleMD = `## Title: Photosynthesis

## Introduction
Plants convert light into chemical energy.

## Section 1: Light Reactions
Happen in the thylakoid membranes.

## Summary
- Light in, sugar out
`

func TestSplitSections(t *testing.T) {
	sections := SplitSections(sampleMD)

	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}

	wantTitles := []string{"Introduction", "Section 1: Light Reactions", "Summary"}
	for i, want := range wantTitles {
		if sections[i].Title != want {
			t.Errorf("section %d title = %q, want %q", i, sections[i].Title, want)
		}
		if sections[i].Index != i {
			t.Errorf("section %d index = %d", i, sections[i].Index)
		}
	}
}

func TestSplitSectionsTitleMarkerDropped(t *testing.T) {
	// The bare "## Title: X" section has no body, so it is dropped, but a
	// title-only doc with trailing prose keeps the marker title.
	md := "## Title: Neural Networks\nA short overview of the field.\n"
	sections := SplitSections(md)

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Title != "Neural Networks" {
		t.Errorf("title = %q, want %q", sections[0].Title, "Neural Networks")
	}
	if sections[0].Body != "A short overview of the field." {
		t.Errorf("body = %q", sections[0].Body)
	}
}

func TestSplitSectionsPreambleDefaultsToIntroduction(t *testing.T) {
	md := "Welcome to the lecture.\n\n## Summary\nThat is all.\n"
	sections := SplitSections(md)

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Title != "Introduction" {
		t.Errorf("first title = %q, want Introduction", sections[0].Title)
	}
}

func TestSplitSectionsDropsEmptyBodies(t *testing.T) {
	md := "## Section 1: Full\nSome content.\n\n## Section 2: Empty\n\n## Section 3: Also Full\nMore content.\n"
	sections := SplitSections(md)

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Title != "Section 1: Full" || sections[1].Title != "Section 3: Also Full" {
		t.Errorf("titles = %q, %q", sections[0].Title, sections[1].Title)
	}
	// Indices are reassigned after dropping, staying dense
	if sections[1].Index != 1 {
		t.Errorf("second section index = %d, want 1", sections[1].Index)
	}
}

func TestSplitSectionsEmptyInput(t *testing.T) {
	if got := SplitSections("   \n  "); got != nil {
		t.Errorf("SplitSections(blank) = %v, want nil", got)
	}
}
