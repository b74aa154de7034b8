package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const dateLayout = "02-01-2006"

const schema = `
CREATE TABLE IF NOT EXISTS authors (
	id BIGSERIAL PRIMARY KEY,
	first_name VARCHAR(50) NOT NULL,
	last_name VARCHAR(50) NOT NULL,
	birth_date DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS books (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(50) NOT NULL,
	isbn BIGINT NOT NULL UNIQUE,
	number_of_pages INT NOT NULL,
	description TEXT,
	author_id BIGINT NOT NULL REFERENCES authors(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// sampleAuthor mirrors one entry of the bundled sample data file.
type sampleAuthor struct {
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	BirthDate string       `json:"birth_date"` // DD-MM-YYYY
	Books     []sampleBook `json:"books"`
}

type sampleBook struct {
	Title         string  `json:"title"`
	ISBN          int64   `json:"isbn"`
	NumberOfPages int     `json:"number_of_pages"`
	Description   *string `json:"description"`
}

func connect(ctx context.Context, configPath string) (*sqlx.DB, error) {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	port, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		port,
		getEnv("POSTGRES_DB", "library"),
	)
	return sqlx.ConnectContext(ctx, "pgx", dsn)
}

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "dbmanage",
		Short:         "Database management commands for the library catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	initSchemaCmd := &cobra.Command{
		Use:   "init-schema",
		Short: "Create the authors, books, and users tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := db.ExecContext(cmd.Context(), schema); err != nil {
				return err
			}
			fmt.Println("Schema has been successfully created")
			return nil
		},
	}

	addDataCmd := &cobra.Command{
		Use:   "add-data [file]",
		Short: "Add sample data to the database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "samples/authors.json"
			if len(args) == 1 {
				path = args[0]
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			var authors []sampleAuthor
			if err := json.Unmarshal(raw, &authors); err != nil {
				return err
			}

			db, err := connect(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			tx, err := db.BeginTxx(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer tx.Rollback()

			for _, a := range authors {
				birthDate, err := time.Parse(dateLayout, a.BirthDate)
				if err != nil {
					return fmt.Errorf("author %s %s: %w", a.FirstName, a.LastName, err)
				}

				var authorID int64
				err = tx.GetContext(cmd.Context(), &authorID,
					"INSERT INTO authors (first_name, last_name, birth_date) VALUES ($1, $2, $3) RETURNING id",
					a.FirstName, a.LastName, birthDate)
				if err != nil {
					return err
				}

				for _, b := range a.Books {
					_, err = tx.ExecContext(cmd.Context(),
						"INSERT INTO books (title, isbn, number_of_pages, description, author_id) VALUES ($1, $2, $3, $4, $5)",
						b.Title, b.ISBN, b.NumberOfPages, b.Description, authorID)
					if err != nil {
						return err
					}
				}
			}

			if err := tx.Commit(); err != nil {
				return err
			}
			fmt.Println("Data has been successfully added to database")
			return nil
		},
	}

	removeDataCmd := &cobra.Command{
		Use:   "remove-data",
		Short: "Remove all catalog data from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := db.ExecContext(cmd.Context(), "TRUNCATE TABLE books, authors RESTART IDENTITY"); err != nil {
				return err
			}
			fmt.Println("Data has been successfully removed from database")
			return nil
		},
	}

	rootCmd.AddCommand(initSchemaCmd, addDataCmd, removeDataCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Unexpected error: %v\n", err)
		os.Exit(1)
	}
}
