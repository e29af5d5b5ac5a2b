package service

import (
	"fmt"
	"sort"
	"time"

	"paw_match_backend/internal/model"

	"gorm.io/gorm"
)

// 内存假仓库，只实现 service 层接口需要的行为，
// 用 gorm 的哨兵错误模拟真实仓库的返回。

type fakeOwnership struct {
	dogsByUser map[uint][]string
}

func newFakeOwnership() *fakeOwnership {
	return &fakeOwnership{dogsByUser: map[uint][]string{}}
}

func (f *fakeOwnership) DogIDsOwnedBy(userID uint) ([]string, error) {
	return f.dogsByUser[userID], nil
}

func (f *fakeOwnership) OwnsAny(userID uint, dogIDs ...string) (bool, error) {
	owned := map[string]bool{}
	for _, id := range f.dogsByUser[userID] {
		owned[id] = true
	}
	for _, id := range dogIDs {
		if owned[id] {
			return true, nil
		}
	}
	return false, nil
}

type fakeDogStore struct {
	byID map[string]*model.Dog
}

func newFakeDogStore() *fakeDogStore {
	return &fakeDogStore{byID: map[string]*model.Dog{}}
}

func (f *fakeDogStore) add(dog *model.Dog) {
	f.byID[dog.ID] = dog
}

func (f *fakeDogStore) GetByID(id string) (*model.Dog, error) {
	dog, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return dog, nil
}

type fakeMatchStore struct {
	byID map[string]*model.Match
	seq  int
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{byID: map[string]*model.Match{}}
}

func (f *fakeMatchStore) add(m *model.Match) *model.Match {
	if m.ID == "" {
		f.seq++
		m.ID = fmt.Sprintf("match-%d", f.seq)
	}
	if m.PairKey == "" {
		m.PairKey = model.PairKey(m.Dog1ID, m.Dog2ID)
	}
	f.byID[m.ID] = m
	return m
}

func (f *fakeMatchStore) Create(m *model.Match) error {
	key := model.PairKey(m.Dog1ID, m.Dog2ID)
	for _, existing := range f.byID {
		if existing.PairKey == key {
			return gorm.ErrDuplicatedKey
		}
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	f.add(m)
	return nil
}

func (f *fakeMatchStore) GetByID(id string) (*model.Match, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMatchStore) FindByPair(dog1ID, dog2ID string) (*model.Match, error) {
	key := model.PairKey(dog1ID, dog2ID)
	for _, m := range f.byID {
		if m.PairKey == key {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMatchStore) FindReversePending(dog1ID, dog2ID string) (*model.Match, error) {
	for _, m := range f.byID {
		if m.Dog1ID == dog2ID && m.Dog2ID == dog1ID && m.Status == model.MatchPending {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMatchStore) UpdateStatus(id string, status model.MatchStatus) error {
	m, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Status = status
	m.UpdatedAt = time.Now()
	return nil
}

func (f *fakeMatchStore) ListForDogs(dogIDs []string) ([]model.Match, error) {
	set := map[string]bool{}
	for _, id := range dogIDs {
		set[id] = true
	}
	var out []model.Match
	for _, m := range f.byID {
		if set[m.Dog1ID] || set[m.Dog2ID] {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMessageStore struct {
	msgs    []*model.Message
	matches *fakeMatchStore
	seq     int
}

func newFakeMessageStore(matches *fakeMatchStore) *fakeMessageStore {
	return &fakeMessageStore{matches: matches}
}

func (f *fakeMessageStore) Create(msg *model.Message) error {
	f.seq++
	msg.ID = fmt.Sprintf("msg-%d", f.seq)
	msg.CreatedAt = time.Now()
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeMessageStore) ListByMatch(matchID string) ([]model.Message, error) {
	var out []model.Message
	for _, m := range f.msgs {
		if m.MatchID == matchID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) MarkInboundRead(matchID string, readerID uint, readAt time.Time) (int64, error) {
	var n int64
	for _, m := range f.msgs {
		if m.MatchID == matchID && m.SenderID != readerID && m.ReadAt == nil {
			t := readAt
			m.ReadAt = &t
			n++
		}
	}
	return n, nil
}

func (f *fakeMessageStore) GetByIDsWithMatch(ids []string) ([]model.Message, error) {
	set := map[string]bool{}
	for _, id := range ids {
		set[id] = true
	}
	var out []model.Message
	for _, m := range f.msgs {
		if !set[m.ID] {
			continue
		}
		cp := *m
		if match, ok := f.matches.byID[m.MatchID]; ok {
			cp.Match = *match
		}
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeMessageStore) MarkReadByIDs(ids []string, readAt time.Time) (int64, error) {
	set := map[string]bool{}
	for _, id := range ids {
		set[id] = true
	}
	var n int64
	for _, m := range f.msgs {
		if set[m.ID] && m.ReadAt == nil {
			t := readAt
			m.ReadAt = &t
			n++
		}
	}
	return n, nil
}

func (f *fakeMessageStore) LastMessage(matchID string) (*model.Message, error) {
	for i := len(f.msgs) - 1; i >= 0; i-- {
		if f.msgs[i].MatchID == matchID {
			cp := *f.msgs[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMessageStore) CountUnread(matchID string, readerID uint) (int64, error) {
	var n int64
	for _, m := range f.msgs {
		if m.MatchID == matchID && m.SenderID != readerID && m.ReadAt == nil {
			n++
		}
	}
	return n, nil
}

type fakePlaydateStore struct {
	byID    map[string]*model.Playdate
	matches *fakeMatchStore
	seq     int
}

func newFakePlaydateStore(matches *fakeMatchStore) *fakePlaydateStore {
	return &fakePlaydateStore{byID: map[string]*model.Playdate{}, matches: matches}
}

// preload 模拟真实仓库查询时带出的 Match 关联
func (f *fakePlaydateStore) preload(p *model.Playdate) {
	if p.Match.ID == "" && f.matches != nil {
		if m, ok := f.matches.byID[p.MatchID]; ok {
			p.Match = *m
		}
	}
}

func (f *fakePlaydateStore) add(p *model.Playdate) *model.Playdate {
	if p.ID == "" {
		f.seq++
		p.ID = fmt.Sprintf("playdate-%d", f.seq)
	}
	f.byID[p.ID] = p
	return p
}

func (f *fakePlaydateStore) Create(p *model.Playdate) error {
	f.add(p)
	return nil
}

func (f *fakePlaydateStore) GetByID(id string) (*model.Playdate, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	f.preload(&cp)
	return &cp, nil
}

func (f *fakePlaydateStore) ListForDogs(dogIDs []string) ([]model.Playdate, error) {
	set := map[string]bool{}
	for _, id := range dogIDs {
		set[id] = true
	}
	var out []model.Playdate
	for _, p := range f.byID {
		cp := *p
		f.preload(&cp)
		if set[cp.Match.Dog1ID] || set[cp.Match.Dog2ID] {
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakePlaydateStore) Update(p *model.Playdate, fields map[string]interface{}) error {
	stored, ok := f.byID[p.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["status"]; ok {
		stored.Status = model.PlaydateStatus(fmt.Sprint(v))
	}
	if v, ok := fields["notes"]; ok {
		stored.Notes = fmt.Sprint(v)
	}
	if v, ok := fields["location_name"]; ok {
		stored.LocationName = fmt.Sprint(v)
	}
	return nil
}

type fakeRatingStore struct {
	byID map[string]*model.Rating
	seq  int
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{byID: map[string]*model.Rating{}}
}

func (f *fakeRatingStore) Create(r *model.Rating) error {
	for _, existing := range f.byID {
		if existing.PlaydateID == r.PlaydateID && existing.RaterID == r.RaterID && existing.RatedDogID == r.RatedDogID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.seq++
	r.ID = fmt.Sprintf("rating-%d", f.seq)
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRatingStore) GetByID(id string) (*model.Rating, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRatingStore) ListByRatedDog(dogID string) ([]model.Rating, error) {
	var out []model.Rating
	for _, r := range f.byID {
		if r.RatedDogID == dogID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) Find(playdateID string, raterID uint, ratedDogID string) (*model.Rating, error) {
	for _, r := range f.byID {
		if r.PlaydateID == playdateID && r.RaterID == raterID && r.RatedDogID == ratedDogID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRatingStore) Update(r *model.Rating, fields map[string]interface{}) error {
	stored, ok := f.byID[r.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["rating"]; ok {
		if n, ok := v.(int); ok {
			stored.Rating = n
		}
	}
	if v, ok := fields["review"]; ok {
		stored.Review = fmt.Sprint(v)
	}
	return nil
}

func (f *fakeRatingStore) Delete(r *model.Rating) error {
	if _, ok := f.byID[r.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, r.ID)
	return nil
}
