package citation

import (
	"context"
	"testing"

	sessiondto "campusqa/internal/modules/session/dto"
	viewerdto "campusqa/internal/modules/viewer/dto"
)

type fakeViewer struct{}

func (fakeViewer) Page(_ context.Context, fileName string, page int) (viewerdto.PageOutput, error) {
	return viewerdto.PageOutput{FileName: fileName, Number: page, PageCount: 10, Text: "page text"}, nil
}

func (fakeViewer) Download(context.Context, string, string) (string, error) { return "", nil }

func showLoaded(t *testing.T) Model {
	t.Helper()
	m := New(fakeViewer{})
	src := sessiondto.SourceOutput{
		ID:         "sess-1-src-0",
		FileName:   "algorithms.pdf",
		Title:      "algorithms",
		PageNumber: 3,
	}
	if cmd := m.Show(src); cmd == nil {
		t.Fatal("Show returned no command")
	}
	m, _ = m.Update(PageLoadedMsg{
		FileName: "algorithms.pdf",
		Page:     viewerdto.PageOutput{FileName: "algorithms.pdf", Number: 3, PageCount: 10, Text: "p3"},
	})
	if m.loading {
		t.Fatal("still loading after the page arrived")
	}
	return m
}

func TestNextPageEntersLoadingState(t *testing.T) {
	t.Parallel()

	m := showLoaded(t)

	cmd := m.NextPage()
	if cmd == nil {
		t.Fatal("NextPage returned no command")
	}
	if !m.loading {
		t.Fatal("NextPage did not enter the loading state")
	}

	m, _ = m.Update(PageLoadedMsg{
		FileName: "algorithms.pdf",
		Page:     viewerdto.PageOutput{FileName: "algorithms.pdf", Number: 4, PageCount: 10, Text: "p4"},
	})
	if m.loading {
		t.Fatal("loading not cleared once the next page arrived")
	}
	if m.page.Number != 4 {
		t.Fatalf("page = %d, want 4", m.page.Number)
	}
}

func TestPrevPageEntersLoadingState(t *testing.T) {
	t.Parallel()

	m := showLoaded(t)

	cmd := m.PrevPage()
	if cmd == nil {
		t.Fatal("PrevPage returned no command")
	}
	if !m.loading {
		t.Fatal("PrevPage did not enter the loading state")
	}
}

func TestPagingIsInertWithoutADocument(t *testing.T) {
	t.Parallel()

	m := New(fakeViewer{})
	if cmd := m.NextPage(); cmd != nil {
		t.Fatal("NextPage paged with no document shown")
	}
	if m.loading {
		t.Fatal("NextPage set loading with no document shown")
	}

	m = showLoaded(t)
	m, _ = m.Update(PageLoadedMsg{
		FileName: "algorithms.pdf",
		Page:     viewerdto.PageOutput{FileName: "algorithms.pdf", Number: 1, PageCount: 10},
	})
	if cmd := m.PrevPage(); cmd != nil {
		t.Fatal("PrevPage paged back past the first page")
	}
}
