package database

import (
	"fmt"
	"log"

	"github.com/gocql/gocql"

	"est/internal/config"
)

// Connect opens the process-wide Cassandra session. The session is created
// once at startup and reused for the process lifetime; callers own the
// Close on shutdown.
func Connect(cfg config.CassandraConfig) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Host)
	cluster.Port = cfg.Port
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Authenticator = gocql.PasswordAuthenticator{
		Username: cfg.Username,
		Password: cfg.Password,
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connect to cassandra at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	log.Printf("connected to Cassandra cluster at %s:%d", cfg.Host, cfg.Port)
	return session, nil
}

// EnsureCourseTables creates the courses and enrollments tables when they
// do not exist yet. There is no foreign key between them; enrollments
// reference courses by id only.
func EnsureCourseTables(session *gocql.Session) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			course_id UUID PRIMARY KEY,
			title TEXT,
			description TEXT,
			upload_date TIMESTAMP,
			teacher_id UUID,
			teacher_name TEXT,
			file_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS enrollments (
			enrollment_id UUID PRIMARY KEY,
			student_id UUID,
			course_id UUID,
			enrollment_date TIMESTAMP,
			status TEXT
		)`,
	}
	for _, q := range ddl {
		if err := session.Query(q).Exec(); err != nil {
			return fmt.Errorf("ensure course tables: %w", err)
		}
	}
	return nil
}

// EnsureUserTable creates the users table when it does not exist yet.
func EnsureUserTable(session *gocql.Session) error {
	q := `CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username TEXT,
		email TEXT,
		full_name TEXT,
		role TEXT,
		created_at TIMESTAMP,
		last_login TIMESTAMP
	)`
	if err := session.Query(q).Exec(); err != nil {
		return fmt.Errorf("ensure users table: %w", err)
	}
	return nil
}
