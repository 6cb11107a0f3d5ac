package hours

import (
	"context"
	"testing"
)

func TestMemoryStoreListings(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore().
		AddSubject(Subject{ID: 3, Name: "Química"}).
		AddSubject(Subject{ID: 1, Name: "Biología"}).
		AddSubject(Subject{ID: 2, Name: "Arte", DeletedAt: deleted()}).
		AddTeacher(Teacher{ID: 1, Name: "Ana"}).
		AddTeacher(Teacher{ID: 2, Name: "Luis", DeletedAt: deleted()}).
		Assign(3, 1).
		Assign(3, 1).
		Assign(1, 2).
		Assign(1, 1)

	subjects, err := store.ListSubjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(subjects) != 2 || subjects[0].Name != "Biología" || subjects[1].Name != "Química" {
		t.Errorf("unexpected subjects %+v", subjects)
	}

	forAna, err := store.ListSubjectsForTeacher(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(forAna) != 2 {
		t.Errorf("expected 2 subjects for teacher 1, got %d", len(forAna))
	}

	assignments, err := store.ListAssignments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected 2 live assignments, got %d", len(assignments))
	}
	if assignments[0].SubjectID != 1 || assignments[1].SubjectID != 3 {
		t.Errorf("unexpected order %+v", assignments)
	}
}

func TestMemoryStoreSubjectByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore().
		AddSubject(Subject{ID: 1, Name: "Biología"}).
		AddSubject(Subject{ID: 2, Name: "Arte", DeletedAt: deleted()})

	subject, ok, err := store.SubjectByID(ctx, 1)
	if err != nil || !ok || subject.Name != "Biología" {
		t.Errorf("unexpected subject 1 %+v %t %v", subject, ok, err)
	}
	for _, id := range []int64{2, 3} {
		if _, ok, err := store.SubjectByID(ctx, id); err != nil || ok {
			t.Errorf("expected subject %d to be missing, got %t %v", id, ok, err)
		}
	}
}

func TestMemoryStoreCourses(t *testing.T) {
	ctx := context.Background()
	gone := Course{ID: 3, Name: "Antiguo", DeletedAt: deleted()}
	store := NewMemoryStore().
		AddCourse(Course{ID: 2, Name: "2º ESO"}).
		AddCourse(Course{ID: 1, Name: "1º ESO"}).
		AddCourse(gone)

	courses, err := store.ListCourses(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 2 || courses[0].ID != 1 || courses[1].ID != 2 {
		t.Errorf("unexpected courses %+v", courses)
	}
	if _, ok, _ := store.CourseByID(ctx, 3); ok {
		t.Error("expected the deleted course to be hidden")
	}
	if _, ok, _ := store.CourseForSubject(ctx, Subject{ID: 1}); ok {
		t.Error("expected a subject without course to have none")
	}
}

func TestMemoryStoreCalendarRange(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore().AddCalendarEntry(
		holiday(day(2024, 3, 1), "c"),
		holiday(day(2024, 1, 1), "a"),
		holiday(day(2024, 2, 1), "b"),
		holiday(day(2024, 4, 1), "fuera"),
	)
	entries, err := store.CalendarEntriesBetween(ctx, day(2024, 1, 1), day(2024, 3, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, expected := range []string{"a", "b", "c"} {
		if entries[i].Description != expected {
			t.Errorf("entry %d: expected %s, got %s", i, expected, entries[i].Description)
		}
	}
}
