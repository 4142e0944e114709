package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tastybites/tastybites/database/dbhelper"
	"github.com/tastybites/tastybites/models"
	"github.com/tastybites/tastybites/templates"
	"github.com/tastybites/tastybites/utils"
)

func CookLogin(w http.ResponseWriter, r *http.Request) {
	loginPage(w, r, models.RoleCook, "Cook login", "/cook_dashboard")
}

func AdminLogin(w http.ResponseWriter, r *http.Request) {
	loginPage(w, r, models.RoleAdmin, "Admin login", "/admin_dashboard")
}

func loginPage(w http.ResponseWriter, r *http.Request, role models.Role, title, successPath string) {
	if r.Method != http.MethodPost {
		renderLogin(w, role, title, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	user, err := dbhelper.GetUserByCredentials(username, password, role)
	if err == models.ErrInvalidCredentials {
		renderLogin(w, role, title, "Invalid "+string(role)+" credentials")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to authenticate user")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		logrus.WithError(err).Error("failed to generate session token")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	utils.SetSessionCookie(w, token)
	http.Redirect(w, r, successPath, http.StatusSeeOther)
}

func renderLogin(w http.ResponseWriter, role models.Role, title, formError string) {
	data := struct {
		Title  string
		Action string
		Error  string
	}{
		Title:  title,
		Action: role.LoginPath(),
		Error:  formError,
	}
	if err := templates.Render(w, "login.html", data); err != nil {
		logrus.WithError(err).Error("failed to render login page")
	}
}

func Logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
