package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/padauklog/internal/db"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
)

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login authenticates against the stored bcrypt hash and opens a session.
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Could not save session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the session and returns to the login page.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard renders post counts per status plus aggregate views.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get(sessionUsernameKey)

	draftCount, err := a.posts.CountByStatus(db.StatusDraft)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	scheduledCount, err := a.posts.CountByStatus(db.StatusScheduled)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	publishedCount, err := a.posts.CountByStatus(db.StatusPublished)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	totalViews, err := a.posts.TotalViews()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	var categoryCount, tagCount int64
	a.db.Model(&db.Category{}).Count(&categoryCount)
	a.db.Model(&db.Tag{}).Count(&tagCount)

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":          "Dashboard",
		"username":       username,
		"draftCount":     draftCount,
		"scheduledCount": scheduledCount,
		"publishedCount": publishedCount,
		"categoryCount":  categoryCount,
		"tagCount":       tagCount,
		"totalViews":     totalViews,
	})
}

// AuthRequired guards the admin group.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps signed-in admins off the login page.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) != nil {
			c.Redirect(http.StatusFound, "/admin/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
