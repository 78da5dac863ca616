package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample users, groups, authorities and NOMIS staff accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm connection: %v", err)
		}

		if clearData {
			for _, table := range []string{"user_authorities", "user_groups", "users", "groups", "authorities", "account_details", "staff_user_accounts", "staff"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

		groups := []struct {
			Code string
			Desc string
		}{
			{"SITE_1_GROUP_1", "Site 1 - Group 1"},
			{"SITE_1_GROUP_2", "Site 1 - Group 2"},
			{"SITE_2_GROUP_1", "Site 2 - Group 1"},
		}
		for _, g := range groups {
			var id int64
			row := db.Raw("SELECT id FROM groups WHERE code = ?", g.Code).Row()
			if err := row.Scan(&id); err != nil {
				if err := db.Exec("INSERT INTO groups (code, description, created_at) VALUES (?, ?, now())", g.Code, g.Desc).Error; err != nil {
					log.Fatalf("failed to insert group %s: %v", g.Code, err)
				}
				fmt.Println("Seeded group:", g.Code)
			}
		}

		authorities := []struct {
			RoleCode string
			Desc     string
		}{
			{"ROLE_MAINTAIN_OAUTH_USERS", "Maintain all auth users"},
			{"ROLE_AUTH_GROUP_MANAGER", "Maintain auth users within own groups"},
		}
		for _, a := range authorities {
			var id int64
			row := db.Raw("SELECT id FROM authorities WHERE role_code = ?", a.RoleCode).Row()
			if err := row.Scan(&id); err != nil {
				if err := db.Exec("INSERT INTO authorities (role_code, role_description, created_at) VALUES (?, ?, now())", a.RoleCode, a.Desc).Error; err != nil {
					log.Fatalf("failed to insert authority %s: %v", a.RoleCode, err)
				}
				fmt.Println("Seeded authority:", a.RoleCode)
			}
		}

		users := []struct {
			Username  string
			Email     string
			Name      string
			Enabled   bool
			Group     string
			Authority string
		}{
			{"AUTH_ADM", "auth.admin@justice.gov.uk", "Auth Admin", true, "", "ROLE_MAINTAIN_OAUTH_USERS"},
			{"AUTH_GROUP_MANAGER", "group.manager@justice.gov.uk", "Group Manager", true, "SITE_1_GROUP_1", "ROLE_AUTH_GROUP_MANAGER"},
			{"AUTH_TEST_USER", "test.user@justice.gov.uk", "Test User", true, "SITE_1_GROUP_1", ""},
			{"AUTH_DISABLED_USER", "disabled.user@justice.gov.uk", "Disabled User", false, "SITE_2_GROUP_1", ""},
		}
		for _, u := range users {
			var id int64
			row := db.Raw("SELECT id FROM users WHERE username = ?", u.Username).Row()
			if err := row.Scan(&id); err != nil {
				if err := db.Exec("INSERT INTO users (username, email, name, password_hash, verified, enabled, master, created_at, updated_at) VALUES (?, ?, ?, ?, true, ?, true, now(), now())",
					u.Username, u.Email, u.Name, string(hash), u.Enabled).Error; err != nil {
					log.Fatalf("failed to insert user %s: %v", u.Username, err)
				}
				fmt.Println("Seeded user:", u.Username)
				row = db.Raw("SELECT id FROM users WHERE username = ?", u.Username).Row()
				if err := row.Scan(&id); err != nil {
					log.Fatalf("failed to read back user %s: %v", u.Username, err)
				}
			}

			if u.Group != "" {
				if err := db.Exec(`INSERT INTO user_groups (user_id, group_id)
					SELECT ?, g.id FROM groups g WHERE g.code = ?
					AND NOT EXISTS (SELECT 1 FROM user_groups ug WHERE ug.user_id = ? AND ug.group_id = g.id)`,
					id, u.Group, id).Error; err != nil {
					log.Fatalf("failed to link user %s to group %s: %v", u.Username, u.Group, err)
				}
			}

			if u.Authority != "" {
				if err := db.Exec(`INSERT INTO user_authorities (user_id, authority_id)
					SELECT ?, a.id FROM authorities a WHERE a.role_code = ?
					AND NOT EXISTS (SELECT 1 FROM user_authorities ua WHERE ua.user_id = ? AND ua.authority_id = a.id)`,
					id, u.Authority, id).Error; err != nil {
					log.Fatalf("failed to link user %s to authority %s: %v", u.Username, u.Authority, err)
				}
			}
		}

		staff := []struct {
			StaffID   int64
			FirstName string
			LastName  string
			Status    string
			Username  string
			Account   string
			Profile   string
		}{
			{101, "Nomis", "User", "ACTIVE", "NOMIS_USER", "OPEN", "GENERAL"},
			{102, "Former", "Officer", "INACTIVE", "NOMIS_LOCKED", "LOCKED", "GENERAL"},
		}
		for _, s := range staff {
			var staffID int64
			row := db.Raw("SELECT staff_id FROM staff WHERE staff_id = ?", s.StaffID).Row()
			if err := row.Scan(&staffID); err != nil {
				if err := db.Exec("INSERT INTO staff (staff_id, first_name, last_name, status) VALUES (?, ?, ?, ?)",
					s.StaffID, s.FirstName, s.LastName, s.Status).Error; err != nil {
					log.Fatalf("failed to insert staff %d: %v", s.StaffID, err)
				}
				if err := db.Exec("INSERT INTO staff_user_accounts (username, staff_id) VALUES (?, ?)", s.Username, s.StaffID).Error; err != nil {
					log.Fatalf("failed to insert staff user account %s: %v", s.Username, err)
				}
				if err := db.Exec("INSERT INTO account_details (username, account_status, profile_name) VALUES (?, ?, ?)", s.Username, s.Account, s.Profile).Error; err != nil {
					log.Fatalf("failed to insert account detail %s: %v", s.Username, err)
				}
				fmt.Println("Seeded staff account:", s.Username)
			}
		}

		fmt.Println("Seeding complete")
	},
}
