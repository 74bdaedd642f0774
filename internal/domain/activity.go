package domain

// ActivityType discriminates the event kinds recorded in the activity feed.
type ActivityType string

const (
	ActivityDeployPot             ActivityType = "Deploy_Pot"
	ActivityRegister              ActivityType = "Register"
	ActivityRegisterBatch         ActivityType = "Register_Batch"
	ActivitySubmitApplication     ActivityType = "Submit_Application"
	ActivitySetPayouts            ActivityType = "Set_Payouts"
	ActivityChallengePayout       ActivityType = "Challenge_Payout"
	ActivityRemoveListAdmins      ActivityType = "Remove_List_Admins"
	ActivityUpvote                ActivityType = "Upvote"
	ActivityDonateDirect          ActivityType = "Donate_Direct"
	ActivityDonatePotMatchingPool ActivityType = "Donate_Pot_Matching_Pool"
	ActivityDonatePotPublic       ActivityType = "Donate_Pot_Public"
)

// RegistrationStatus is the review state of a list registration or pot
// application.
type RegistrationStatus string

const (
	RegistrationPending     RegistrationStatus = "Pending"
	RegistrationApproved    RegistrationStatus = "Approved"
	RegistrationRejected    RegistrationStatus = "Rejected"
	RegistrationGraylisted  RegistrationStatus = "Graylisted"
	RegistrationBlacklisted RegistrationStatus = "Blacklisted"
)
