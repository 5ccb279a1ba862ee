package integration_test

const (
	TestUserId        = 1
	TestUserFirstName = "Jane"
	TestUserLastName  = "Doe"
	TestUserEmail     = "test@example.com"
	TestUserPassword  = "Test123!@#"

	TestMovieTitle    = "Test Movie"
	TestMovieLanguage = "English"
	TestMovieDuration = 120

	ticketPrice = "8.00"
)
