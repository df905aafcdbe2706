package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/haierkeys/fast-file-share-service/internal/domain"
	"github.com/haierkeys/fast-file-share-service/internal/dto"
	"github.com/haierkeys/fast-file-share-service/pkg/code"
	"github.com/haierkeys/fast-file-share-service/pkg/sharename"
	"github.com/haierkeys/fast-file-share-service/pkg/util"

	"go.uber.org/zap"
)

type mockShareRepo struct {
	domain.ShareRepository
	shares []*domain.Share
	nextID int64
}

func (m *mockShareRepo) Create(ctx context.Context, share *domain.Share) error {
	m.nextID++
	share.ID = m.nextID
	m.shares = append(m.shares, share)
	return nil
}

func (m *mockShareRepo) GetByID(ctx context.Context, uid int64, id int64) (*domain.Share, error) {
	for _, s := range m.shares {
		if s.ID == id && s.UID == uid {
			return s, nil
		}
	}
	return nil, domain.ErrShareRevoked
}

func (m *mockShareRepo) GetByToken(ctx context.Context, token string) (*domain.Share, error) {
	for _, s := range m.shares {
		if s.Token == token && s.IsLink() {
			return s, nil
		}
	}
	return nil, domain.ErrShareRevoked
}

func (m *mockShareRepo) Update(ctx context.Context, uid int64, share *domain.Share) error {
	return nil
}

func (m *mockShareRepo) UpdateViewStats(ctx context.Context, uid int64, id int64, viewCountIncr int64, lastViewedAt time.Time) error {
	for _, s := range m.shares {
		if s.ID == id {
			s.ViewCount += viewCountIncr
			s.LastViewedAt = lastViewedAt
		}
	}
	return nil
}

func (m *mockShareRepo) UpdateStatus(ctx context.Context, uid int64, id int64, status int64) error {
	for _, s := range m.shares {
		if s.ID == id && s.UID == uid {
			s.Status = status
		}
	}
	return nil
}

func (m *mockShareRepo) ListByUID(ctx context.Context, uid int64) ([]*domain.Share, error) {
	var out []*domain.Share
	for _, s := range m.shares {
		if s.UID == uid && s.Status == domain.ShareStatusActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockShareRepo) Delete(ctx context.Context, uid int64, id int64) error {
	for i, s := range m.shares {
		if s.ID == id && s.UID == uid {
			m.shares = append(m.shares[:i], m.shares[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockShareRepo) ListByFile(ctx context.Context, uid int64, fileID int64) ([]*domain.Share, error) {
	var out []*domain.Share
	for _, s := range m.shares {
		if s.UID == uid && s.FileID == fileID && s.Status == domain.ShareStatusActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockShareRepo) LinkNamesByFile(ctx context.Context, uid int64, fileID int64) ([]string, error) {
	var names []string
	for _, s := range m.shares {
		if s.UID == uid && s.FileID == fileID && s.IsLink() && s.Status == domain.ShareStatusActive {
			names = append(names, s.Name)
		}
	}
	return names, nil
}

type mockFileRepo struct {
	domain.FileRepository
	files []*domain.File
}

func (m *mockFileRepo) GetByID(ctx context.Context, id int64, uid int64) (*domain.File, error) {
	for _, f := range m.files {
		if f.ID == id && f.UID == uid {
			return f, nil
		}
	}
	return nil, code.ErrorFileNotFound
}

func newTestShareService(shareRepo *mockShareRepo, fileRepo *mockFileRepo) *shareService {
	logger := zap.NewNop()
	return &shareService{
		repo:        shareRepo,
		fileRepo:    fileRepo,
		allocator:   sharename.NewAllocator(logger),
		logger:      logger,
		config:      &ServiceConfig{App: AppSettings{PublicBaseURL: "https://share.example.com"}},
		statsBuffer: make(map[int64]*aggStats),
		ticker:      time.NewTicker(time.Hour),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

func TestCreateLinkDefaultNames(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	fileRepo := &mockFileRepo{files: []*domain.File{
		{ID: 10, UID: uid, Path: "docs/report.pdf", Name: "report.pdf"},
	}}
	shareRepo := &mockShareRepo{}
	svc := newTestShareService(shareRepo, fileRepo)

	// 第一条链接使用模板名称
	res, err := svc.CreateLink(ctx, uid, &dto.LinkCreateRequest{FileID: 10})
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}
	if res.Share.Name != "Link to report.pdf" {
		t.Errorf("first link name = %q, want %q", res.Share.Name, "Link to report.pdf")
	}
	if !strings.HasPrefix(res.URL, "https://share.example.com/s/") {
		t.Errorf("link url = %q, want base prefix", res.URL)
	}

	// 第二条链接在模板名称后追加编号，从 2 开始
	res, err = svc.CreateLink(ctx, uid, &dto.LinkCreateRequest{FileID: 10})
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}
	if res.Share.Name != "Link to report.pdf (2)" {
		t.Errorf("second link name = %q, want %q", res.Share.Name, "Link to report.pdf (2)")
	}

	// 第三条继续递增
	res, err = svc.CreateLink(ctx, uid, &dto.LinkCreateRequest{FileID: 10})
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}
	if res.Share.Name != "Link to report.pdf (3)" {
		t.Errorf("third link name = %q, want %q", res.Share.Name, "Link to report.pdf (3)")
	}

	// 用户提供的名称原样保留
	res, err = svc.CreateLink(ctx, uid, &dto.LinkCreateRequest{FileID: 10, Name: "for the team"})
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}
	if res.Share.Name != "for the team" {
		t.Errorf("custom link name = %q, want %q", res.Share.Name, "for the team")
	}
}

func TestCreateLinkNameAllocationFailure(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	fileRepo := &mockFileRepo{files: []*domain.File{
		{ID: 10, UID: uid, Path: "docs/report.pdf", Name: "report.pdf"},
	}}
	// 已有链接带有超出 int 范围的编号后缀，名称分配返回空串
	shareRepo := &mockShareRepo{shares: []*domain.Share{
		{ID: 1, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Status: domain.ShareStatusActive,
			Name: "Link to report.pdf"},
		{ID: 2, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Status: domain.ShareStatusActive,
			Name: "Link to report.pdf (99999999999999999999999999)"},
	}}
	shareRepo.nextID = 2
	svc := newTestShareService(shareRepo, fileRepo)

	res, err := svc.CreateLink(ctx, uid, &dto.LinkCreateRequest{FileID: 10})
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}
	// 链接仍然创建成功，但保持未命名
	if res.Share.Name != "" {
		t.Errorf("link name = %q, want unnamed", res.Share.Name)
	}
}

func TestResolveLink(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	passwordHash, err := util.GeneratePasswordHash("secret")
	if err != nil {
		t.Fatalf("GeneratePasswordHash failed: %v", err)
	}

	expired := time.Now().Add(-time.Hour)

	fileRepo := &mockFileRepo{files: []*domain.File{
		{ID: 10, UID: uid, Path: "docs/report.pdf", Name: "report.pdf"},
	}}
	shareRepo := &mockShareRepo{shares: []*domain.Share{
		{ID: 1, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Status: domain.ShareStatusActive,
			Token: "tok-open", Permissions: domain.PermissionRead | domain.PermissionDownload},
		{ID: 2, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Status: domain.ShareStatusActive,
			Token: "tok-protected", PasswordHash: passwordHash, Permissions: domain.PermissionRead},
		{ID: 3, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Status: domain.ShareStatusActive,
			Token: "tok-expired", ExpiresAt: &expired, Permissions: domain.PermissionRead},
		{ID: 4, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Status: domain.ShareStatusRevoked,
			Token: "tok-revoked", Permissions: domain.PermissionRead},
	}}
	svc := newTestShareService(shareRepo, fileRepo)

	tests := []struct {
		name     string
		token    string
		password string
		wantErr  *code.Code
		download bool
	}{
		{name: "open link resolves", token: "tok-open", download: true},
		{name: "protected link with right password", token: "tok-protected", password: "secret"},
		{name: "protected link with wrong password", token: "tok-protected", password: "nope", wantErr: code.ErrorSharePassword},
		{name: "expired link", token: "tok-expired", wantErr: code.ErrorShareExpired},
		{name: "revoked link", token: "tok-revoked", wantErr: code.ErrorShareNotFound},
		{name: "unknown token", token: "tok-missing", wantErr: code.ErrorShareNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.ResolveLink(ctx, tt.token, tt.password)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("ResolveLink succeeded, want error %v", tt.wantErr)
				}
				cObj, ok := err.(*code.Code)
				if !ok || cObj.Code() != tt.wantErr.Code() {
					t.Errorf("ResolveLink error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveLink failed: %v", err)
			}
			if res.File == nil || res.File.Name != "report.pdf" {
				t.Errorf("ResolveLink file = %+v, want report.pdf", res.File)
			}
			if res.AllowDownload != tt.download {
				t.Errorf("AllowDownload = %v, want %v", res.AllowDownload, tt.download)
			}
		})
	}
}

func TestResolveLinkRecordsViewStats(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	fileRepo := &mockFileRepo{files: []*domain.File{
		{ID: 10, UID: uid, Name: "report.pdf"},
	}}
	shareRepo := &mockShareRepo{shares: []*domain.Share{
		{ID: 1, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Status: domain.ShareStatusActive,
			Token: "tok", Permissions: domain.PermissionRead},
	}}
	svc := newTestShareService(shareRepo, fileRepo)

	for i := 0; i < 3; i++ {
		if _, err := svc.ResolveLink(ctx, "tok", ""); err != nil {
			t.Fatalf("ResolveLink failed: %v", err)
		}
	}

	// 访问计数先在内存聚合，flush 后写入仓库
	svc.flush()

	if got := shareRepo.shares[0].ViewCount; got != 3 {
		t.Errorf("view count = %d, want 3", got)
	}
}

func TestCreateShareDuplicateGrantee(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	fileRepo := &mockFileRepo{files: []*domain.File{
		{ID: 10, UID: uid, Name: "report.pdf"},
	}}
	shareRepo := &mockShareRepo{}
	svc := newTestShareService(shareRepo, fileRepo)

	params := &dto.ShareCreateRequest{FileID: 10, Type: "user", Grantee: "alice"}

	if _, err := svc.CreateShare(ctx, uid, params); err != nil {
		t.Fatalf("CreateShare failed: %v", err)
	}

	_, err := svc.CreateShare(ctx, uid, params)
	if err == nil {
		t.Fatal("CreateShare succeeded for duplicate grantee, want error")
	}
	if cObj, ok := err.(*code.Code); !ok || cObj.Code() != code.ErrorShareExists.Code() {
		t.Errorf("CreateShare error = %v, want %v", err, code.ErrorShareExists)
	}

	// 同名但组类型不冲突
	if _, err := svc.CreateShare(ctx, uid, &dto.ShareCreateRequest{FileID: 10, Type: "group", Grantee: "alice"}); err != nil {
		t.Errorf("CreateShare group failed: %v", err)
	}
}

func TestListSharesSplitsLinks(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	fileRepo := &mockFileRepo{files: []*domain.File{
		{ID: 10, UID: uid, Name: "report.pdf"},
	}}
	shareRepo := &mockShareRepo{shares: []*domain.Share{
		{ID: 1, UID: uid, FileID: 10, Type: domain.ShareTypeUser, Grantee: "alice", Status: domain.ShareStatusActive},
		{ID: 2, UID: uid, FileID: 10, Type: domain.ShareTypeGroup, Grantee: "devs", Status: domain.ShareStatusActive},
		{ID: 3, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Token: "tok", Status: domain.ShareStatusActive,
			PasswordHash: "x"},
	}}
	svc := newTestShareService(shareRepo, fileRepo)

	res, err := svc.ListShares(ctx, uid, 10)
	if err != nil {
		t.Fatalf("ListShares failed: %v", err)
	}

	if len(res.Shares) != 2 {
		t.Errorf("shares length = %d, want 2", len(res.Shares))
	}
	if len(res.Links) != 1 {
		t.Errorf("links length = %d, want 1", len(res.Links))
	}
	if !res.Links[0].HasPassword {
		t.Error("link HasPassword = false, want true")
	}

	// fileID 为 0 时列出用户全部分享
	res, err = svc.ListShares(ctx, uid, 0)
	if err != nil {
		t.Fatalf("ListShares all failed: %v", err)
	}
	if res.File != nil {
		t.Error("file = non-nil for user-wide listing, want nil")
	}
	if len(res.Shares)+len(res.Links) != 3 {
		t.Errorf("total shares = %d, want 3", len(res.Shares)+len(res.Links))
	}
}

func TestRemoveShareRevokesLink(t *testing.T) {
	ctx := context.Background()
	uid := int64(1)

	fileRepo := &mockFileRepo{files: []*domain.File{
		{ID: 10, UID: uid, Name: "report.pdf"},
	}}
	shareRepo := &mockShareRepo{shares: []*domain.Share{
		{ID: 1, UID: uid, FileID: 10, Type: domain.ShareTypeUser, Grantee: "alice", Status: domain.ShareStatusActive},
		{ID: 2, UID: uid, FileID: 10, Type: domain.ShareTypeLink, Token: "tok", Status: domain.ShareStatusActive},
	}}
	shareRepo.nextID = 2
	svc := newTestShareService(shareRepo, fileRepo)

	// 公开链接标记撤销，保留记录
	if err := svc.RemoveShare(ctx, uid, 2); err != nil {
		t.Fatalf("RemoveShare link failed: %v", err)
	}
	if len(shareRepo.shares) != 2 {
		t.Fatalf("shares length = %d, want 2 (link kept)", len(shareRepo.shares))
	}
	if shareRepo.shares[1].Status != domain.ShareStatusRevoked {
		t.Errorf("link status = %d, want revoked", shareRepo.shares[1].Status)
	}

	// 已撤销的链接不再出现在用户全量列表中
	res, err := svc.ListShares(ctx, uid, 0)
	if err != nil {
		t.Fatalf("ListShares failed: %v", err)
	}
	if len(res.Links) != 0 {
		t.Errorf("links length = %d, want 0 after revoke", len(res.Links))
	}
	if len(res.Shares) != 1 {
		t.Errorf("shares length = %d, want 1", len(res.Shares))
	}

	// 用户分享直接删除
	if err := svc.RemoveShare(ctx, uid, 1); err != nil {
		t.Fatalf("RemoveShare user failed: %v", err)
	}
	if len(shareRepo.shares) != 1 {
		t.Errorf("shares length = %d, want 1 after delete", len(shareRepo.shares))
	}
}
