package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/denis333rus/procuratyra/internal/config"
	"github.com/denis333rus/procuratyra/internal/feed"
	"github.com/denis333rus/procuratyra/internal/models"
)

func testDB(t *testing.T) *Database {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Backend = "sqlite"
	cfg.Database.DSN = filepath.Join(t.TempDir(), "test.db")

	database, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(database.Close)

	return database
}

func pendingApplication(login string) *models.JobApplication {
	return &models.JobApplication{
		NickDS:   "ivan#1234",
		CharName: "Иван Иванов",
		CharJob:  "Помощник прокурора",
		Login:    login,
		Password: "secret123",
	}
}

func TestApproveApplication_ProvisionsAccountAndEmployee(t *testing.T) {
	database := testDB(t)

	require.NoError(t, database.CreateJobApplication(pendingApplication("ivan")))
	apps, err := database.GetJobApplications(10)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationPending, apps[0].Status)

	require.NoError(t, database.ApproveApplication(apps[0].ID, "hash"))

	user, err := database.GetUserByUsername("ivan")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, user.Role)
	assert.Equal(t, "Иван Иванов", user.FullName)
	require.NotNil(t, user.ApplicationID)
	assert.Equal(t, apps[0].ID, *user.ApplicationID)

	employees, err := database.GetEmployees(10)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Иван Иванов", employees[0].Name)
	assert.Equal(t, "Помощник прокурора", employees[0].Position)
	assert.Equal(t, "ivan#1234", employees[0].Contact)

	app, err := database.GetJobApplicationByID(apps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, app.Status)
}

func TestApproveApplication_SecondApproveIsConflict(t *testing.T) {
	database := testDB(t)

	require.NoError(t, database.CreateJobApplication(pendingApplication("ivan")))
	apps, err := database.GetJobApplications(1)
	require.NoError(t, err)

	require.NoError(t, database.ApproveApplication(apps[0].ID, "hash"))
	err = database.ApproveApplication(apps[0].ID, "hash")
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	users, err := database.GetUsers(10)
	require.NoError(t, err)
	assert.Len(t, users, 1, "second approve must not create a second account")

	employees, err := database.GetEmployees(10)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestApproveApplication_TakenUsernameWritesNothing(t *testing.T) {
	database := testDB(t)

	require.NoError(t, database.CreateUser("ivan", "hash", "Другой Иван", models.RoleEmployee))
	require.NoError(t, database.CreateJobApplication(pendingApplication("ivan")))
	apps, err := database.GetJobApplications(1)
	require.NoError(t, err)

	err = database.ApproveApplication(apps[0].ID, "hash")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	app, err := database.GetJobApplicationByID(apps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)

	employees, err := database.GetEmployees(10)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestRejectApplication_NoSideEffects(t *testing.T) {
	database := testDB(t)

	require.NoError(t, database.CreateJobApplication(pendingApplication("ivan")))
	apps, err := database.GetJobApplications(1)
	require.NoError(t, err)

	require.NoError(t, database.RejectApplication(apps[0].ID))

	app, err := database.GetJobApplicationByID(apps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, app.Status)

	users, err := database.GetUsers(10)
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.ErrorIs(t, database.ApproveApplication(apps[0].ID, "hash"), ErrAlreadyDecided)
}

func TestClaimComplaint_FirstWriterWins(t *testing.T) {
	database := testDB(t)

	require.NoError(t, database.CreateComplaint(&models.Complaint{
		ReporterName: "Петров",
		Details:      "нарушение",
	}))
	complaints, err := database.GetComplaints(1)
	require.NoError(t, err)
	id := complaints[0].ID

	won, err := database.ClaimComplaint(id, "prosecutor")
	require.NoError(t, err)
	assert.True(t, won)

	won, err = database.ClaimComplaint(id, "second")
	require.NoError(t, err)
	assert.False(t, won, "a claimed complaint must not be re-claimed")

	c, err := database.GetComplaintByID(id)
	require.NoError(t, err)
	require.NotNil(t, c.ClaimedBy)
	assert.Equal(t, "prosecutor", *c.ClaimedBy)
	assert.NotNil(t, c.ClaimedAt)
}

func TestNotifications_FanOutAndReadState(t *testing.T) {
	database := testDB(t)

	require.NoError(t, database.NotifyRoles(
		"Новая жалоба", "поступила жалоба", NotificationTypeComplaint,
		models.RoleAdmin, models.RoleProsecutor))

	adminCount, err := database.CountUnreadNotifications(models.RoleAdmin, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, adminCount)

	prosecutorCount, err := database.CountUnreadNotifications(models.RoleProsecutor, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, prosecutorCount)

	items, err := database.GetNotifications(models.RoleAdmin, 0, 50)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].IsRead)

	require.NoError(t, database.MarkNotificationRead(items[0].ID))

	adminCount, err = database.CountUnreadNotifications(models.RoleAdmin, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, adminCount)

	// the other role's copy is untouched
	prosecutorCount, err = database.CountUnreadNotifications(models.RoleProsecutor, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, prosecutorCount)
}

func TestNotifications_RecipientScoping(t *testing.T) {
	database := testDB(t)

	seven := 7
	require.NoError(t, database.AddNotification("личное", "", NotificationTypeApplication, models.RoleEmployee, &seven))
	require.NoError(t, database.AddNotification("общее", "", NotificationTypeApplication, models.RoleEmployee, nil))

	mine, err := database.GetNotifications(models.RoleEmployee, 7, 50)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	other, err := database.GetNotifications(models.RoleEmployee, 8, 50)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestFeedPageTwo_GroupsRemainingRows(t *testing.T) {
	database := testDB(t)

	// fresh DB is seeded with exactly 7 feed rows across 3 dates; add 3 more
	require.NoError(t, database.AddFeedNews("2025-10-18", "10:00", "одиннадцатая", "", "#"))
	require.NoError(t, database.AddFeedNews("2025-10-18", "11:00", "двенадцатая", "", "#"))
	require.NoError(t, database.AddFeedNews("2025-10-19", "09:00", "тринадцатая", "", "#"))

	total, err := database.CountFeedNews()
	require.NoError(t, err)
	require.Equal(t, 10, total)

	page, pages, offset := feed.Paginate(total, 2, feed.PerPage)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, pages)

	rows, err := database.GetFeedNewsPage(feed.PerPage, offset)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	groups := feed.GroupByDate(rows)
	require.NotEmpty(t, groups)
	for i := 1; i < len(groups); i++ {
		assert.Greater(t, groups[i-1].Date, groups[i].Date)
	}
	n := 0
	for _, g := range groups {
		n += len(g.Items)
	}
	assert.Equal(t, 3, n)
}

func TestSearchFeedNews_CapAndOrder(t *testing.T) {
	database := testDB(t)

	rows, err := database.SearchFeedNews("прокуратура", feed.SearchCap)
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Contains(t, r.Title+" "+r.Description, "рокуратура")
	}

	none, err := database.SearchFeedNews("точно-нет-такого", feed.SearchCap)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSettingsCounter(t *testing.T) {
	database := testDB(t)

	assert.Equal(t, 0, database.PoliticiansRemoved())
	require.NoError(t, database.SetSetting("politicians_removed", "4"))
	assert.Equal(t, 4, database.PoliticiansRemoved())
	require.NoError(t, database.SetSetting("politicians_removed", "5"))
	assert.Equal(t, 5, database.PoliticiansRemoved())
}
