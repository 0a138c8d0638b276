package models

import "time"

// Роли аккаунтов.
const (
	RoleEmployee   = "employee"
	RoleProsecutor = "prosecutor"
	RoleAdmin      = "admin"
)

// Статусы заявок на трудоустройство.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

type SliderItem struct {
	ID          int       `db:"id"`
	Date        string    `db:"date"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Image       string    `db:"image"`
	CreatedAt   time.Time `db:"created_at"`
}

type FeedItem struct {
	ID          int       `db:"id"`
	Date        string    `db:"date"`
	Time        string    `db:"time"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	URL         string    `db:"url"`
	CreatedAt   time.Time `db:"created_at"`
}

type JobApplication struct {
	ID               int       `db:"id"`
	NickDS           string    `db:"nick_ds"`
	NickRoblox       string    `db:"nick_roblox"`
	CharName         string    `db:"char_name"`
	RealAge          string    `db:"real_age"`
	CharBirth        string    `db:"char_birth"`
	DateNow          string    `db:"date_now"`
	CharAge          string    `db:"char_age"`
	CharNationality  string    `db:"char_nationality"`
	CharJob          string    `db:"char_job"`
	CharEducation    string    `db:"char_education"`
	About            string    `db:"about"`
	WhatIsProsecutor string    `db:"what_is_prosecutor"`
	LiteracyTest     string    `db:"literacy_test"`
	HasConvictions   string    `db:"has_convictions"`
	HasExperience    string    `db:"has_experience"`
	TermUPK          string    `db:"term_upk"`
	TermUK           string    `db:"term_uk"`
	TermKOAP         string    `db:"term_koap"`
	TermTK           string    `db:"term_tk"`
	Login            string    `db:"login"`
	Password         string    `db:"password"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
}

type Employee struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	Position string `db:"position"`
	Contact  string `db:"contact"`
}

type Document struct {
	ID          int    `db:"id"`
	Date        string `db:"date"`
	Title       string `db:"title"`
	Description string `db:"description"`
	URL         string `db:"url"`
}

// Поле Date у Leader исторически хранит должность ("Прокурор области",
// "Заместитель прокурора..."); по нему страница "О прокуратуре" делит
// руководство на прокурора и заместителей.
type Leader struct {
	ID      int    `db:"id"`
	Date    string `db:"date"`
	Name    string `db:"name"`
	Message string `db:"message"`
	Photo   string `db:"photo"`
}

type Contact struct {
	ID    int    `db:"id"`
	Label string `db:"label"`
	Value string `db:"value"`
}

type Complaint struct {
	ID           int        `db:"id"`
	ReporterName string     `db:"reporter_name"`
	NickDS       string     `db:"nick_ds"`
	ViolatorNick string     `db:"violator_nick"`
	Details      string     `db:"details"`
	Image        string     `db:"image"`
	ClaimedBy    *string    `db:"claimed_by"`
	ClaimedAt    *time.Time `db:"claimed_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type DocumentDraft struct {
	ID          int       `db:"id"`
	CreatedBy   string    `db:"created_by"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	URL         string    `db:"url"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type User struct {
	ID            int       `db:"id"`
	Username      string    `db:"username"`
	PasswordHash  string    `db:"password_hash"`
	FullName      string    `db:"full_name"`
	Role          string    `db:"role"`
	ApplicationID *int      `db:"application_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type OrgUnit struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	URL         string `db:"url"`
}

type HotlineAppeal struct {
	ID           int       `db:"id"`
	FIO          string    `db:"fio"`
	Organization string    `db:"organization"`
	Subject      string    `db:"subject"`
	Message      string    `db:"message"`
	CreatedAt    time.Time `db:"created_at"`
}

type Notification struct {
	ID            int       `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Message       string    `db:"message" json:"message"`
	Type          string    `db:"type" json:"type"`
	RecipientRole string    `db:"recipient_role" json:"recipient_role"`
	RecipientID   *int      `db:"recipient_id" json:"recipient_id,omitempty"`
	IsRead        bool      `db:"is_read" json:"is_read"`
	Payload       *string   `db:"payload" json:"payload,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
