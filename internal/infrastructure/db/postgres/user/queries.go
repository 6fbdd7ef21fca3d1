package user

const (
	userColumns = `id, uuid, email, password_hash, name, phone, type, is_active, profile_image, cover_image, created_at, updated_at`

	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE uuid = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, name, phone, type, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING ` + userColumns + `
	`
	InsertTrainerDetails = `
		INSERT INTO trainer_details (user_id, specializations, certifications, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, specializations, certifications, bio, rating, rating_count, created_at, updated_at
	`
	SelectTrainerDetailsByUserID = `
		SELECT id, user_id, specializations, certifications, bio, rating, rating_count, created_at, updated_at
		FROM trainer_details
		WHERE user_id = $1
	`
	UpdateProfileImageByUUID = `
		UPDATE users
		SET profile_image = $1,
		    updated_at = now()
		WHERE uuid = $2
		RETURNING ` + userColumns + `
	`
	UpdateCoverImageByUUID = `
		UPDATE users
		SET cover_image = $1,
		    updated_at = now()
		WHERE uuid = $2
		RETURNING ` + userColumns + `
	`
)
