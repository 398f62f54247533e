package main

import "database/sql"

func getUserByEmail(db *sql.DB, email string) (*User, error) {
	row := db.QueryRow(`
		SELECT id, email, password, name
		FROM user
		WHERE email = ?`, email)

	var user User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func getUserByID(db *sql.DB, id int) (*User, error) {
	row := db.QueryRow(`
		SELECT id, email, password, name
		FROM user
		WHERE id = ?`, id)

	var user User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func createUser(db *sql.DB, email, passwordHash, name string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO user (email, password, name)
		VALUES (?, ?, ?)`, email, passwordHash, name)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
