package services_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"refspot_backend/internal/email"
	"refspot_backend/internal/models"
	"refspot_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the SQL semantics the real
// implementations rely on (ordering, preloads, not-found sentinels) so
// the services can be exercised without a database.

// ---------- users ----------

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) add(user models.User) *models.User {
	r.nextID++
	user.ID = r.nextID
	stored := user
	r.users[user.ID] = &stored
	return &stored
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == emailAddr {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResumeFile(filename string) (*models.User, error) {
	for _, user := range r.users {
		if user.ResumeFile == filename {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) UpdateProfileImage(userID uint, filename string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.ProfileImage = filename
	return nil
}

func (r *fakeUserRepo) UpdateResumeFile(userID uint, filename string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.ResumeFile = filename
	return nil
}

func (r *fakeUserRepo) SearchPeople(query string, excludeID uint) ([]models.User, error) {
	q := strings.ToLower(query)
	var results []models.User
	for _, user := range r.users {
		if user.ID == excludeID {
			continue
		}
		haystack := strings.ToLower(strings.Join([]string{
			user.Username, user.FirstName, user.LastName, user.Headline, user.CurrentCompany,
		}, " "))
		if strings.Contains(haystack, q) {
			results = append(results, *user)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Username < results[j].Username })
	return results, nil
}

// ---------- profiles ----------

type fakeProfileRepo struct {
	skills      map[uint]*models.UserSkill
	experiences map[uint]*models.Experience
	educations  map[uint]*models.Education
	nextID      uint
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		skills:      make(map[uint]*models.UserSkill),
		experiences: make(map[uint]*models.Experience),
		educations:  make(map[uint]*models.Education),
	}
}

func (r *fakeProfileRepo) SkillsByUser(userID uint) ([]models.UserSkill, error) {
	result := make([]models.UserSkill, 0)
	for _, skill := range r.skills {
		if skill.UserID == userID {
			result = append(result, *skill)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SkillName < result[j].SkillName })
	return result, nil
}

func (r *fakeProfileRepo) SkillExists(userID uint, skillName string) (bool, error) {
	for _, skill := range r.skills {
		if skill.UserID == userID && strings.EqualFold(skill.SkillName, skillName) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfileRepo) CreateSkill(skill *models.UserSkill) error {
	r.nextID++
	skill.ID = r.nextID
	stored := *skill
	r.skills[skill.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) FindSkill(id, userID uint) (*models.UserSkill, error) {
	skill, ok := r.skills[id]
	if !ok || skill.UserID != userID {
		return nil, repositories.ErrSkillNotFound
	}
	found := *skill
	return &found, nil
}

func (r *fakeProfileRepo) DeleteSkill(id, userID uint) error {
	skill, ok := r.skills[id]
	if !ok || skill.UserID != userID {
		return repositories.ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeProfileRepo) ExperiencesByUser(userID uint) ([]models.Experience, error) {
	result := make([]models.Experience, 0)
	for _, exp := range r.experiences {
		if exp.UserID == userID {
			result = append(result, *exp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeProfileRepo) CreateExperience(exp *models.Experience) error {
	r.nextID++
	exp.ID = r.nextID
	stored := *exp
	r.experiences[exp.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) FindExperience(id, userID uint) (*models.Experience, error) {
	exp, ok := r.experiences[id]
	if !ok || exp.UserID != userID {
		return nil, repositories.ErrExperienceNotFound
	}
	found := *exp
	return &found, nil
}

func (r *fakeProfileRepo) UpdateExperience(exp *models.Experience) error {
	if _, ok := r.experiences[exp.ID]; !ok {
		return repositories.ErrExperienceNotFound
	}
	stored := *exp
	r.experiences[exp.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) DeleteExperience(id, userID uint) error {
	exp, ok := r.experiences[id]
	if !ok || exp.UserID != userID {
		return repositories.ErrExperienceNotFound
	}
	delete(r.experiences, id)
	return nil
}

func (r *fakeProfileRepo) EducationsByUser(userID uint) ([]models.Education, error) {
	result := make([]models.Education, 0)
	for _, edu := range r.educations {
		if edu.UserID == userID {
			result = append(result, *edu)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeProfileRepo) CreateEducation(edu *models.Education) error {
	r.nextID++
	edu.ID = r.nextID
	stored := *edu
	r.educations[edu.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) FindEducation(id, userID uint) (*models.Education, error) {
	edu, ok := r.educations[id]
	if !ok || edu.UserID != userID {
		return nil, repositories.ErrEducationNotFound
	}
	found := *edu
	return &found, nil
}

func (r *fakeProfileRepo) UpdateEducation(edu *models.Education) error {
	if _, ok := r.educations[edu.ID]; !ok {
		return repositories.ErrEducationNotFound
	}
	stored := *edu
	r.educations[edu.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) DeleteEducation(id, userID uint) error {
	edu, ok := r.educations[id]
	if !ok || edu.UserID != userID {
		return repositories.ErrEducationNotFound
	}
	delete(r.educations, id)
	return nil
}

// ---------- connections ----------

type fakeConnectionRepo struct {
	users  *fakeUserRepo
	conns  map[uint]*models.Connection
	nextID uint
}

func newFakeConnectionRepo(users *fakeUserRepo) *fakeConnectionRepo {
	return &fakeConnectionRepo{users: users, conns: make(map[uint]*models.Connection)}
}

func (r *fakeConnectionRepo) between(userA, userB uint, statuses ...models.ConnectionStatus) *models.Connection {
	for _, conn := range r.conns {
		pair := (conn.SenderID == userA && conn.ReceiverID == userB) ||
			(conn.SenderID == userB && conn.ReceiverID == userA)
		if !pair {
			continue
		}
		for _, status := range statuses {
			if conn.Status == status {
				return conn
			}
		}
	}
	return nil
}

func (r *fakeConnectionRepo) FindByID(id uint) (*models.Connection, error) {
	conn, ok := r.conns[id]
	if !ok {
		return nil, repositories.ErrConnectionNotFound
	}
	found := *conn
	found.Sender, _ = r.users.FindByID(conn.SenderID)
	found.Receiver, _ = r.users.FindByID(conn.ReceiverID)
	return &found, nil
}

func (r *fakeConnectionRepo) FindActiveBetween(userA, userB uint) (*models.Connection, error) {
	if conn := r.between(userA, userB, models.ConnectionStatusPending, models.ConnectionStatusAccepted); conn != nil {
		return conn, nil
	}
	return nil, repositories.ErrConnectionNotFound
}

func (r *fakeConnectionRepo) FindAcceptedBetween(userA, userB uint) (*models.Connection, error) {
	if conn := r.between(userA, userB, models.ConnectionStatusAccepted); conn != nil {
		return conn, nil
	}
	return nil, repositories.ErrConnectionNotFound
}

func (r *fakeConnectionRepo) Create(conn *models.Connection) error {
	r.nextID++
	conn.ID = r.nextID
	conn.CreatedAt = time.Now()
	conn.UpdatedAt = conn.CreatedAt
	stored := *conn
	r.conns[conn.ID] = &stored
	return nil
}

func (r *fakeConnectionRepo) UpdateStatus(id uint, status models.ConnectionStatus) error {
	conn, ok := r.conns[id]
	if !ok {
		return repositories.ErrConnectionNotFound
	}
	conn.Status = status
	conn.UpdatedAt = time.Now()
	return nil
}

func (r *fakeConnectionRepo) Delete(id uint) error {
	if _, ok := r.conns[id]; !ok {
		return repositories.ErrConnectionNotFound
	}
	delete(r.conns, id)
	return nil
}

func (r *fakeConnectionRepo) acceptedConns(userID uint) []*models.Connection {
	var accepted []*models.Connection
	for _, conn := range r.conns {
		if conn.Status == models.ConnectionStatusAccepted && conn.IsParty(userID) {
			accepted = append(accepted, conn)
		}
	}
	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].UpdatedAt.After(accepted[j].UpdatedAt)
	})
	return accepted
}

func (r *fakeConnectionRepo) AcceptedPartners(userID uint) ([]models.User, error) {
	partners := make([]models.User, 0)
	for _, conn := range r.acceptedConns(userID) {
		if partner, err := r.users.FindByID(conn.PartnerID(userID)); err == nil {
			partners = append(partners, *partner)
		}
	}
	return partners, nil
}

func (r *fakeConnectionRepo) RecentAcceptedPartners(userID uint, limit int) ([]models.User, error) {
	partners, err := r.AcceptedPartners(userID)
	if err != nil {
		return nil, err
	}
	if len(partners) > limit {
		partners = partners[:limit]
	}
	return partners, nil
}

func (r *fakeConnectionRepo) IncomingPending(userID uint) ([]models.Connection, error) {
	result := make([]models.Connection, 0)
	for _, conn := range r.conns {
		if conn.ReceiverID == userID && conn.Status == models.ConnectionStatusPending {
			found := *conn
			found.Sender, _ = r.users.FindByID(conn.SenderID)
			result = append(result, found)
		}
	}
	return result, nil
}

func (r *fakeConnectionRepo) OutgoingPending(userID uint) ([]models.Connection, error) {
	result := make([]models.Connection, 0)
	for _, conn := range r.conns {
		if conn.SenderID == userID && conn.Status == models.ConnectionStatusPending {
			found := *conn
			found.Receiver, _ = r.users.FindByID(conn.ReceiverID)
			result = append(result, found)
		}
	}
	return result, nil
}

func (r *fakeConnectionRepo) CountPendingIncoming(userID uint) (int64, error) {
	var count int64
	for _, conn := range r.conns {
		if conn.ReceiverID == userID && conn.Status == models.ConnectionStatusPending {
			count++
		}
	}
	return count, nil
}

// ---------- messages ----------

type fakeMessageRepo struct {
	users  *fakeUserRepo
	msgs   []*models.Message
	nextID uint
	clock  time.Time
}

func newFakeMessageRepo(users *fakeUserRepo) *fakeMessageRepo {
	return &fakeMessageRepo{users: users, clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (r *fakeMessageRepo) betweenPair(msg *models.Message, userA, userB uint) bool {
	return (msg.SenderID == userA && msg.ReceiverID == userB) ||
		(msg.SenderID == userB && msg.ReceiverID == userA)
}

func (r *fakeMessageRepo) FindByID(id uint) (*models.Message, error) {
	for _, msg := range r.msgs {
		if msg.ID == id {
			found := *msg
			found.Sender, _ = r.users.FindByID(msg.SenderID)
			found.Receiver, _ = r.users.FindByID(msg.ReceiverID)
			return &found, nil
		}
	}
	return nil, repositories.ErrMessageNotFound
}

func (r *fakeMessageRepo) Create(msg *models.Message) error {
	r.nextID++
	msg.ID = r.nextID
	// strictly increasing timestamps keep the ordering deterministic
	r.clock = r.clock.Add(time.Minute)
	msg.CreatedAt = r.clock
	stored := *msg
	r.msgs = append(r.msgs, &stored)
	return nil
}

func (r *fakeMessageRepo) UpdateRequestStatus(id uint, status models.MessageRequestStatus) error {
	for _, msg := range r.msgs {
		if msg.ID == id {
			msg.RequestStatus = status
			return nil
		}
	}
	return repositories.ErrMessageNotFound
}

func (r *fakeMessageRepo) ApprovedBetweenExists(userA, userB uint) (bool, error) {
	for _, msg := range r.msgs {
		if msg.RequestStatus == models.MessageRequestApproved && r.betweenPair(msg, userA, userB) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMessageRepo) ApprovedBetween(userA, userB uint) ([]models.Message, error) {
	result := make([]models.Message, 0)
	for _, msg := range r.msgs {
		if msg.RequestStatus == models.MessageRequestApproved && r.betweenPair(msg, userA, userB) {
			result = append(result, *msg)
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) ApprovedForUser(userID uint) ([]models.Message, error) {
	result := make([]models.Message, 0)
	for i := len(r.msgs) - 1; i >= 0; i-- {
		msg := r.msgs[i]
		if msg.RequestStatus != models.MessageRequestApproved {
			continue
		}
		if msg.SenderID != userID && msg.ReceiverID != userID {
			continue
		}
		found := *msg
		found.Sender, _ = r.users.FindByID(msg.SenderID)
		found.Receiver, _ = r.users.FindByID(msg.ReceiverID)
		result = append(result, found)
	}
	return result, nil
}

func (r *fakeMessageRepo) PendingForReceiver(userID uint) ([]models.Message, error) {
	result := make([]models.Message, 0)
	for i := len(r.msgs) - 1; i >= 0; i-- {
		msg := r.msgs[i]
		if msg.ReceiverID == userID && msg.RequestStatus == models.MessageRequestPending {
			found := *msg
			found.Sender, _ = r.users.FindByID(msg.SenderID)
			result = append(result, found)
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) MarkReadFromPartner(userID, partnerID uint) error {
	for _, msg := range r.msgs {
		if msg.SenderID == partnerID && msg.ReceiverID == userID &&
			msg.RequestStatus == models.MessageRequestApproved {
			msg.Read = true
		}
	}
	return nil
}

func (r *fakeMessageRepo) UnreadFromPartnerCount(userID, partnerID uint) (int64, error) {
	var count int64
	for _, msg := range r.msgs {
		if msg.SenderID == partnerID && msg.ReceiverID == userID &&
			msg.RequestStatus == models.MessageRequestApproved && !msg.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) UnreadApprovedCount(userID uint) (int64, error) {
	var count int64
	for _, msg := range r.msgs {
		if msg.ReceiverID == userID && msg.RequestStatus == models.MessageRequestApproved && !msg.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) PendingCount(userID uint) (int64, error) {
	var count int64
	for _, msg := range r.msgs {
		if msg.ReceiverID == userID && msg.RequestStatus == models.MessageRequestPending {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) UnreadCount(userID uint) (int64, error) {
	var count int64
	for _, msg := range r.msgs {
		if msg.ReceiverID == userID && !msg.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) DeleteBetween(userA, userB uint) error {
	kept := r.msgs[:0]
	for _, msg := range r.msgs {
		if !r.betweenPair(msg, userA, userB) {
			kept = append(kept, msg)
		}
	}
	r.msgs = kept
	return nil
}

// ---------- referrals ----------

type fakeReferralRepo struct {
	users      *fakeUserRepo
	requests   map[uint]*models.ReferralRequest
	referrals  []*models.JobReferral
	nextReqID  uint
	nextRefID  uint
	respondErr error
}

func newFakeReferralRepo(users *fakeUserRepo) *fakeReferralRepo {
	return &fakeReferralRepo{users: users, requests: make(map[uint]*models.ReferralRequest)}
}

func (r *fakeReferralRepo) CreateRequest(req *models.ReferralRequest) error {
	r.nextReqID++
	req.ID = r.nextReqID
	req.CreatedAt = time.Now()
	stored := *req
	r.requests[req.ID] = &stored
	return nil
}

func (r *fakeReferralRepo) FindRequestByID(id uint) (*models.ReferralRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, repositories.ErrReferralRequestNotFound
	}
	found := *req
	found.JobSeeker, _ = r.users.FindByID(req.JobSeekerID)
	return &found, nil
}

func (r *fakeReferralRepo) OpenRequests(excludeSeekerID uint) ([]models.ReferralRequest, error) {
	result := make([]models.ReferralRequest, 0)
	for _, req := range r.requests {
		if req.Status == models.ReferralRequestOpen && req.JobSeekerID != excludeSeekerID {
			found := *req
			found.JobSeeker, _ = r.users.FindByID(req.JobSeekerID)
			result = append(result, found)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeReferralRepo) RequestsBySeeker(seekerID uint) ([]models.ReferralRequest, error) {
	result := make([]models.ReferralRequest, 0)
	for _, req := range r.requests {
		if req.JobSeekerID == seekerID {
			result = append(result, *req)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeReferralRepo) CreateReferral(ref *models.JobReferral) error {
	r.nextRefID++
	ref.ID = r.nextRefID
	ref.CreatedAt = time.Now()
	stored := *ref
	r.referrals = append(r.referrals, &stored)
	return nil
}

func (r *fakeReferralRepo) GivenBy(referrerID uint) ([]models.JobReferral, error) {
	result := make([]models.JobReferral, 0)
	for _, ref := range r.referrals {
		if ref.ReferrerID == referrerID {
			found := *ref
			found.Candidate, _ = r.users.FindByID(ref.CandidateID)
			result = append(result, found)
		}
	}
	return result, nil
}

func (r *fakeReferralRepo) ReceivedBy(candidateID uint) ([]models.JobReferral, error) {
	result := make([]models.JobReferral, 0)
	for _, ref := range r.referrals {
		if ref.CandidateID == candidateID {
			found := *ref
			found.Referrer, _ = r.users.FindByID(ref.ReferrerID)
			result = append(result, found)
		}
	}
	return result, nil
}

func (r *fakeReferralRepo) RecentReceivedBy(candidateID uint, limit int) ([]models.JobReferral, error) {
	received, err := r.ReceivedBy(candidateID)
	if err != nil {
		return nil, err
	}
	if len(received) > limit {
		received = received[:limit]
	}
	return received, nil
}

// RespondToRequest mimics the transactional behavior: either both the
// referral and the status flip land, or neither does.
func (r *fakeReferralRepo) RespondToRequest(ref *models.JobReferral, requestID uint) error {
	if r.respondErr != nil {
		return r.respondErr
	}
	req, ok := r.requests[requestID]
	if !ok {
		return repositories.ErrReferralRequestNotFound
	}
	if err := r.CreateReferral(ref); err != nil {
		return err
	}
	req.Status = models.ReferralRequestFulfilled
	return nil
}

// ---------- jobs ----------

type fakeJobRepo struct {
	users  *fakeUserRepo
	jobs   map[uint]*models.JobPosting
	nextID uint
}

func newFakeJobRepo(users *fakeUserRepo) *fakeJobRepo {
	return &fakeJobRepo{users: users, jobs: make(map[uint]*models.JobPosting)}
}

func (r *fakeJobRepo) Create(job *models.JobPosting) error {
	r.nextID++
	job.ID = r.nextID
	job.CreatedAt = time.Now()
	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *fakeJobRepo) FindByID(id uint) (*models.JobPosting, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	found := *job
	found.PostedBy, _ = r.users.FindByID(job.PostedByID)
	return &found, nil
}

func (r *fakeJobRepo) Deactivate(id uint) error {
	job, ok := r.jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.IsActive = false
	return nil
}

func (r *fakeJobRepo) ActiveWithFilter(search, location string) ([]models.JobPosting, error) {
	q := strings.ToLower(search)
	loc := strings.ToLower(location)
	result := make([]models.JobPosting, 0)
	for _, job := range r.jobs {
		if !job.IsActive {
			continue
		}
		if q != "" {
			haystack := strings.ToLower(job.Title + " " + job.Company + " " + job.Description)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		if loc != "" && !strings.Contains(strings.ToLower(job.Location), loc) {
			continue
		}
		result = append(result, *job)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeJobRepo) SearchActive(query string) ([]models.JobPosting, error) {
	return r.ActiveWithFilter(query, "")
}

// ---------- collaborators ----------

type fakeMailer struct {
	sent    []*email.Email
	sendErr error
}

func (m *fakeMailer) Send(e *email.Email) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, e)
	return nil
}

type fakeLogoFetcher struct {
	logo    string
	fetched []string
	deleted []string
}

func (f *fakeLogoFetcher) Fetch(ctx context.Context, companyName string) string {
	f.fetched = append(f.fetched, companyName)
	return f.logo
}

func (f *fakeLogoFetcher) Delete(ctx context.Context, filename string) {
	if filename != "" {
		f.deleted = append(f.deleted, filename)
	}
}
