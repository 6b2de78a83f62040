package usecases_test

import (
	"context"
	"fmt"
	"time"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/repositories"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

// fakeUserRepo keeps users in memory keyed by clientId and hands out copies,
// like a real store would.
type fakeUserRepo struct {
	users     map[string]*entities.User
	nextID    int
	saveCalls int
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entities.User{}}
}

func (r *fakeUserRepo) copyOf(user *entities.User) *entities.User {
	clone := *user
	clone.Videos = append([]entities.Video(nil), user.Videos...)
	return &clone
}

func (r *fakeUserRepo) Save(_ context.Context, user *entities.User) (*entities.User, error) {
	r.saveCalls++
	persisted := r.copyOf(user)
	if existing, ok := r.users[user.ClientID]; ok {
		persisted.ID = existing.ID
	} else if persisted.ID == "" {
		r.nextID++
		persisted.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.users[user.ClientID] = persisted
	return r.copyOf(persisted), nil
}

func (r *fakeUserRepo) FindByClientId(_ context.Context, clientID string) (*entities.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[clientID]
	if !ok {
		return nil, nil
	}
	return r.copyOf(user), nil
}

func (r *fakeUserRepo) AddVideoToUser(_ context.Context, clientID string, video entities.Video) (*entities.User, error) {
	user, ok := r.users[clientID]
	if !ok {
		return nil, &apperrors.UserNotFoundError{ClientID: clientID}
	}
	user.AddVideo(video)
	return r.copyOf(user), nil
}

func (r *fakeUserRepo) UpdateVideo(_ context.Context, clientID string, video entities.Video) (*entities.Video, error) {
	user, ok := r.users[clientID]
	if !ok {
		return nil, &apperrors.UserNotFoundError{ClientID: clientID}
	}
	if err := user.ReplaceVideo(video); err != nil {
		return nil, err
	}
	return &video, nil
}

type fakePresigner struct {
	uploads    []repositories.UploadParams
	downloads  []string
	uploadErr  error
	signingErr error
}

func (p *fakePresigner) PresignedUploadURL(_ context.Context, params repositories.UploadParams) (*repositories.PresignedUpload, error) {
	if p.uploadErr != nil {
		return nil, p.uploadErr
	}
	p.uploads = append(p.uploads, params)
	key := fmt.Sprintf("%s/%s.%s", params.UploadType, params.FileName, params.FileType)
	return &repositories.PresignedUpload{
		URL: "https://s3.localhost/" + key + "?signed",
		Key: key,
	}, nil
}

func (p *fakePresigner) PresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if p.signingErr != nil {
		return "", p.signingErr
	}
	p.downloads = append(p.downloads, key)
	return "https://s3.localhost/" + key + "?signed", nil
}

type publishedMessage struct {
	Type string
	Data any
}

type fakePublisher struct {
	messages   []publishedMessage
	publishErr error
}

func (p *fakePublisher) Publish(_ context.Context, messageType string, data any) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.messages = append(p.messages, publishedMessage{Type: messageType, Data: data})
	return nil
}

type fakeIdentity struct {
	signUps   []string
	logins    []string
	loginErr  error
	signUpErr error
}

func (i *fakeIdentity) SignUp(_ context.Context, email, _ string) error {
	if i.signUpErr != nil {
		return i.signUpErr
	}
	i.signUps = append(i.signUps, email)
	return nil
}

func (i *fakeIdentity) Login(_ context.Context, email, _ string) (string, error) {
	if i.loginErr != nil {
		return "", i.loginErr
	}
	i.logins = append(i.logins, email)
	return "access-token", nil
}

type fakeVerifier struct {
	claims      *repositories.TokenClaims
	validateErr error
	lastUse     repositories.TokenUse
}

func (v *fakeVerifier) Validate(_ context.Context, _ string, use repositories.TokenUse) (*repositories.TokenClaims, error) {
	v.lastUse = use
	if v.validateErr != nil {
		return nil, v.validateErr
	}
	return v.claims, nil
}
