package trainer

const (
	SelectFeaturedTrainers = `
		SELECT u.uuid, u.name, u.profile_image, u.cover_image,
		       td.specializations, td.certifications, td.bio, td.rating, td.rating_count
		FROM users u
		JOIN trainer_details td ON td.user_id = u.id
		WHERE u.type = 'trainer' AND u.is_active
		ORDER BY random()
		LIMIT $1
	`
)
