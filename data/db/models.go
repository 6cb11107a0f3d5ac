package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Course struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	StartYear       pgtype.Int4        `json:"start_year"`
	EndYear         pgtype.Int4        `json:"end_year"`
	Grade           pgtype.Text        `json:"grade"`
	Trimester1Start pgtype.Date        `json:"trimester_1_start"`
	Trimester1End   pgtype.Date        `json:"trimester_1_end"`
	Trimester2Start pgtype.Date        `json:"trimester_2_start"`
	Trimester2End   pgtype.Date        `json:"trimester_2_end"`
	Trimester3Start pgtype.Date        `json:"trimester_3_start"`
	Trimester3End   pgtype.Date        `json:"trimester_3_end"`
	DeletedAt       pgtype.Timestamptz `json:"deleted_at"`
}

type Subject struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	WeeklyHours int32              `json:"weekly_hours"`
	Grade       pgtype.Text        `json:"grade"`
	CourseID    pgtype.Int8        `json:"course_id"`
	DeletedAt   pgtype.Timestamptz `json:"deleted_at"`
}

type User struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}

type Schedule struct {
	ID        int64              `json:"id"`
	SubjectID int64              `json:"subject_id"`
	UserID    pgtype.Int8        `json:"user_id"`
	Weekday   string             `json:"weekday"` // parsed by hours.ParseWeekday
	Hours     int32              `json:"hours"`
	DeletedAt pgtype.Timestamptz `json:"deleted_at"`
}

type Type struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Calendar struct {
	ID          int64              `json:"id"`
	Date        pgtype.Date        `json:"date"`
	Description string             `json:"description"`
	TypeID      int64              `json:"type_id"`
	DeletedAt   pgtype.Timestamptz `json:"deleted_at"`
}
