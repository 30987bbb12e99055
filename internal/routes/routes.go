package routes

const (
	Health  = "/health"
	Metrics = "/metrics"

	// Worker auth
	WorkerSendVerifyEmail = "/api/worker/auth/send-mail"
	WorkerRegister        = "/api/worker/auth/register"
	WorkerLogin           = "/api/worker/auth/login"
	WorkerRefresh         = "/api/worker/auth/refresh"
	WorkerLogout          = "/api/worker/auth/logout"
	WorkerMe              = "/api/worker/me"

	// Recruiter auth
	RecruiterSendVerifyEmail = "/api/recruiter/auth/send-mail"
	RecruiterRegister        = "/api/recruiter/auth/register"
	RecruiterLogin           = "/api/recruiter/auth/login"
	RecruiterRefresh         = "/api/recruiter/auth/refresh"
	RecruiterLogout          = "/api/recruiter/auth/logout"
	RecruiterMe              = "/api/recruiter/me"

	// Jobs, recruiter side
	JobCreate     = "/api/job"
	JobEdit       = "/api/job/{jobId}"
	JobList       = "/api/job"
	JobDetail     = "/api/job/{jobId}"
	JobPublish    = "/api/job/{jobId}/public"
	JobPause      = "/api/job/{jobId}/pause"
	JobClose      = "/api/job/{jobId}/close"
	JobApplicants = "/api/job/{jobId}/recruiting"

	// Jobs, worker side
	PublicJobList   = "/api/job/worker"
	PublicJobDetail = "/api/job/worker/{jobId}"
	JobApply        = "/api/job/{jobId}/apply"

	// Recruiting pipeline
	RecruitingAdvance          = "/api/job/recruiting/{recruitingId}/up"
	RecruitingReject           = "/api/job/recruiting/{recruitingId}/reject"
	RecruitingList             = "/api/recruiting"
	RecruitingThread           = "/api/recruiting/{recruitingId}"
	RecruitingWorkerMessage    = "/api/recruiting/worker"
	RecruitingRecruiterMessage = "/api/recruiting/recruiter"

	// Bookmarks
	BookmarkAdd    = "/api/bookmark"
	BookmarkRemove = "/api/bookmark/{jobId}"
	BookmarkList   = "/api/bookmark"
)
