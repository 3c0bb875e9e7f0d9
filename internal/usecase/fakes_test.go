package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"cinema-platform/internal/data/entity"

	"github.com/jackc/pgx/v5"
)

// In-memory repository fakes backing the service tests.

func pageOf[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

type fakeCouponRepo struct {
	coupons map[int64]entity.Coupon
	nextID  int64
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: map[int64]entity.Coupon{}, nextID: 1}
}

func (f *fakeCouponRepo) Create(_ context.Context, coupon *entity.Coupon) (int64, error) {
	id := f.nextID
	f.nextID++
	coupon.ID = id
	f.coupons[id] = *coupon
	return id, nil
}

func (f *fakeCouponRepo) FindByID(_ context.Context, id int64) (*entity.Coupon, error) {
	coupon, ok := f.coupons[id]
	if !ok {
		return nil, nil
	}
	return &coupon, nil
}

func (f *fakeCouponRepo) FindByCode(_ context.Context, code string) (*entity.Coupon, error) {
	for _, coupon := range f.coupons {
		if coupon.Code == code {
			result := coupon
			return &result, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponRepo) FindAll(_ context.Context) ([]*entity.Coupon, error) {
	result := make([]*entity.Coupon, 0, len(f.coupons))
	for id := range f.coupons {
		coupon := f.coupons[id]
		result = append(result, &coupon)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (f *fakeCouponRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.coupons[id]
	return ok, nil
}

func (f *fakeCouponRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, coupon := range f.coupons {
		if coupon.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCouponRepo) Update(_ context.Context, coupon *entity.Coupon) error {
	if _, ok := f.coupons[coupon.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.coupons[coupon.ID] = *coupon
	return nil
}

func (f *fakeCouponRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.coupons[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.coupons, id)
	return nil
}

type fakeMovieRepo struct {
	movies map[int64]entity.Movie
	nextID int64
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[int64]entity.Movie{}, nextID: 1}
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) (int64, error) {
	id := f.nextID
	f.nextID++
	movie.ID = id
	f.movies[id] = *movie
	return id, nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (f *fakeMovieRepo) FindAll(_ context.Context, offset, limit int) ([]*entity.Movie, error) {
	result := make([]*entity.Movie, 0, len(f.movies))
	for id := range f.movies {
		movie := f.movies[id]
		result = append(result, &movie)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return pageOf(result, offset, limit), nil
}

func (f *fakeMovieRepo) FindByTitleContains(_ context.Context, title string, offset, limit int) ([]*entity.Movie, error) {
	var result []*entity.Movie
	for id := range f.movies {
		movie := f.movies[id]
		if strings.Contains(strings.ToLower(movie.Title), strings.ToLower(title)) {
			result = append(result, &movie)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return pageOf(result, offset, limit), nil
}

func (f *fakeMovieRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.movies[id]
	return ok, nil
}

func (f *fakeMovieRepo) ExistsByTitleAndPosterURL(_ context.Context, title, posterURL string) (bool, error) {
	for _, movie := range f.movies {
		if strings.EqualFold(movie.Title, title) && strings.EqualFold(movie.PosterURL, posterURL) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	if _, ok := f.movies[movie.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.movies[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.movies, id)
	return nil
}

type fakeGenreRepo struct {
	genres map[int64]entity.Genre
	nextID int64
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{genres: map[int64]entity.Genre{}, nextID: 1}
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *entity.Genre) (int64, error) {
	id := f.nextID
	f.nextID++
	genre.ID = id
	f.genres[id] = *genre
	return id, nil
}

func (f *fakeGenreRepo) FindByID(_ context.Context, id int64) (*entity.Genre, error) {
	genre, ok := f.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}

func (f *fakeGenreRepo) FindAll(_ context.Context, offset, limit int) ([]*entity.Genre, error) {
	result := make([]*entity.Genre, 0, len(f.genres))
	for id := range f.genres {
		genre := f.genres[id]
		result = append(result, &genre)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return pageOf(result, offset, limit), nil
}

func (f *fakeGenreRepo) FindByNameContains(_ context.Context, name string, offset, limit int) ([]*entity.Genre, error) {
	var result []*entity.Genre
	for id := range f.genres {
		genre := f.genres[id]
		if strings.Contains(strings.ToLower(genre.Name), strings.ToLower(name)) {
			result = append(result, &genre)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return pageOf(result, offset, limit), nil
}

func (f *fakeGenreRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.genres[id]
	return ok, nil
}

func (f *fakeGenreRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, genre := range f.genres {
		if strings.EqualFold(genre.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGenreRepo) Update(_ context.Context, genre *entity.Genre) error {
	if _, ok := f.genres[genre.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.genres[genre.ID] = *genre
	return nil
}

func (f *fakeGenreRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.genres[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.genres, id)
	return nil
}

type moviegenrePair struct {
	movieID int64
	genreID int64
}

type fakeMovieGenreRepo struct {
	pairs  map[moviegenrePair]bool
	movies *fakeMovieRepo
	genres *fakeGenreRepo
}

func newFakeMovieGenreRepo(movies *fakeMovieRepo, genres *fakeGenreRepo) *fakeMovieGenreRepo {
	return &fakeMovieGenreRepo{pairs: map[moviegenrePair]bool{}, movies: movies, genres: genres}
}

func (f *fakeMovieGenreRepo) Attach(_ context.Context, movieID, genreID int64) error {
	f.pairs[moviegenrePair{movieID, genreID}] = true
	return nil
}

func (f *fakeMovieGenreRepo) DetachByMovieID(_ context.Context, movieID int64) error {
	for pair := range f.pairs {
		if pair.movieID == movieID {
			delete(f.pairs, pair)
		}
	}
	return nil
}

func (f *fakeMovieGenreRepo) DetachByGenreID(_ context.Context, genreID int64) error {
	for pair := range f.pairs {
		if pair.genreID == genreID {
			delete(f.pairs, pair)
		}
	}
	return nil
}

func (f *fakeMovieGenreRepo) FindGenresByMovieID(_ context.Context, movieID int64) ([]entity.Genre, error) {
	var result []entity.Genre
	for pair := range f.pairs {
		if pair.movieID == movieID {
			if genre, ok := f.genres.genres[pair.genreID]; ok {
				result = append(result, genre)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeMovieGenreRepo) FindMoviesByGenreID(_ context.Context, genreID int64) ([]entity.Movie, error) {
	var result []entity.Movie
	for pair := range f.pairs {
		if pair.genreID == genreID {
			if movie, ok := f.movies.movies[pair.movieID]; ok {
				result = append(result, movie)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeCinemaRepo struct {
	cinemas map[int64]entity.Cinema
	nextID  int64
}

func newFakeCinemaRepo() *fakeCinemaRepo {
	return &fakeCinemaRepo{cinemas: map[int64]entity.Cinema{}, nextID: 1}
}

func (f *fakeCinemaRepo) Create(_ context.Context, cinema *entity.Cinema) (int64, error) {
	id := f.nextID
	f.nextID++
	cinema.ID = id
	f.cinemas[id] = *cinema
	return id, nil
}

func (f *fakeCinemaRepo) FindByID(_ context.Context, id int64) (*entity.Cinema, error) {
	cinema, ok := f.cinemas[id]
	if !ok {
		return nil, nil
	}
	return &cinema, nil
}

func (f *fakeCinemaRepo) FindAll(_ context.Context, nameFilter *string, offset, limit int) ([]*entity.Cinema, error) {
	var result []*entity.Cinema
	for id := range f.cinemas {
		cinema := f.cinemas[id]
		if nameFilter != nil && *nameFilter != "" &&
			!strings.Contains(strings.ToLower(cinema.Name), strings.ToLower(*nameFilter)) {
			continue
		}
		result = append(result, &cinema)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return pageOf(result, offset, limit), nil
}

func (f *fakeCinemaRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.cinemas[id]
	return ok, nil
}

func (f *fakeCinemaRepo) Update(_ context.Context, cinema *entity.Cinema) error {
	if _, ok := f.cinemas[cinema.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.cinemas[cinema.ID] = *cinema
	return nil
}

func (f *fakeCinemaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.cinemas[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.cinemas, id)
	return nil
}

type fakeRoomRepo struct {
	rooms  map[int64]entity.Room
	nextID int64
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int64]entity.Room{}, nextID: 1}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) (int64, error) {
	id := f.nextID
	f.nextID++
	room.ID = id
	f.rooms[id] = *room
	return id, nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id int64) (*entity.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (f *fakeRoomRepo) FindByIDAndCinemaID(_ context.Context, id, cinemaID int64) (*entity.Room, error) {
	room, ok := f.rooms[id]
	if !ok || room.CinemaID != cinemaID {
		return nil, nil
	}
	return &room, nil
}

func (f *fakeRoomRepo) FindAllByCinemaID(_ context.Context, cinemaID int64) ([]entity.Room, error) {
	var result []entity.Room
	for id := range f.rooms {
		if f.rooms[id].CinemaID == cinemaID {
			result = append(result, f.rooms[id])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeRoomRepo) ExistsByCinemaIDAndName(_ context.Context, cinemaID int64, name string) (bool, error) {
	for _, room := range f.rooms {
		if room.CinemaID == cinemaID && strings.EqualFold(room.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	if _, ok := f.rooms[room.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.rooms[room.ID] = *room
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) DeleteByCinemaID(_ context.Context, cinemaID int64) error {
	for id := range f.rooms {
		if f.rooms[id].CinemaID == cinemaID {
			delete(f.rooms, id)
		}
	}
	return nil
}

type fakeNowPlayingRepo struct {
	screenings map[int64]entity.NowPlaying
	nextID     int64
}

func newFakeNowPlayingRepo() *fakeNowPlayingRepo {
	return &fakeNowPlayingRepo{screenings: map[int64]entity.NowPlaying{}, nextID: 1}
}

func (f *fakeNowPlayingRepo) Create(_ context.Context, screening *entity.NowPlaying) (int64, error) {
	id := f.nextID
	f.nextID++
	screening.ID = id
	f.screenings[id] = *screening
	return id, nil
}

func (f *fakeNowPlayingRepo) FindByID(_ context.Context, id int64) (*entity.NowPlaying, error) {
	screening, ok := f.screenings[id]
	if !ok {
		return nil, nil
	}
	return &screening, nil
}

func (f *fakeNowPlayingRepo) FindAll(_ context.Context) ([]*entity.NowPlaying, error) {
	result := make([]*entity.NowPlaying, 0, len(f.screenings))
	for id := range f.screenings {
		screening := f.screenings[id]
		result = append(result, &screening)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeNowPlayingRepo) FindByMovieTitleContains(_ context.Context, title string) ([]*entity.NowPlaying, error) {
	var result []*entity.NowPlaying
	for id := range f.screenings {
		screening := f.screenings[id]
		if strings.Contains(strings.ToLower(screening.MovieTitle), strings.ToLower(title)) {
			result = append(result, &screening)
		}
	}
	return result, nil
}

func (f *fakeNowPlayingRepo) FindByTimeBetween(_ context.Context, start, end time.Time) ([]*entity.NowPlaying, error) {
	var result []*entity.NowPlaying
	for id := range f.screenings {
		screening := f.screenings[id]
		if !screening.TimeWhenMoviePlay.Before(start) && screening.TimeWhenMoviePlay.Before(end) {
			result = append(result, &screening)
		}
	}
	return result, nil
}

func (f *fakeNowPlayingRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.screenings[id]
	return ok, nil
}

func (f *fakeNowPlayingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.screenings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.screenings, id)
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[int64]entity.Invoice
	nextID   int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[int64]entity.Invoice{}, nextID: 1}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) (int64, error) {
	id := f.nextID
	f.nextID++
	invoice.ID = id
	stored := *invoice
	stored.Tickets = nil
	f.invoices[id] = stored
	return id, nil
}

func (f *fakeInvoiceRepo) FindByID(_ context.Context, id int64) (*entity.Invoice, error) {
	invoice, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	return &invoice, nil
}

func (f *fakeInvoiceRepo) FindAll(_ context.Context, username *string, nowPlayingID *int64, paid *bool) ([]*entity.Invoice, error) {
	var result []*entity.Invoice
	for id := range f.invoices {
		invoice := f.invoices[id]
		if username != nil && !strings.EqualFold(invoice.Username, *username) {
			continue
		}
		if nowPlayingID != nil && invoice.NowPlayingID != *nowPlayingID {
			continue
		}
		if paid != nil && invoice.Paid != *paid {
			continue
		}
		result = append(result, &invoice)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeInvoiceRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.invoices[id]
	return ok, nil
}

func (f *fakeInvoiceRepo) SetPaid(_ context.Context, id int64, paid bool) error {
	invoice, ok := f.invoices[id]
	if !ok {
		return pgx.ErrNoRows
	}
	invoice.Paid = paid
	f.invoices[id] = invoice
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.invoices[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.invoices, id)
	return nil
}

type fakeTicketRepo struct {
	tickets map[int64]entity.Ticket
	nextID  int64
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[int64]entity.Ticket{}, nextID: 1}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) (int64, error) {
	id := f.nextID
	f.nextID++
	ticket.ID = id
	f.tickets[id] = *ticket
	return id, nil
}

func (f *fakeTicketRepo) FindByID(_ context.Context, id int64) (*entity.Ticket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, nil
	}
	return &ticket, nil
}

func (f *fakeTicketRepo) FindAll(_ context.Context, offset, limit int) ([]*entity.Ticket, error) {
	all := make([]entity.Ticket, 0, len(f.tickets))
	for id := range f.tickets {
		all = append(all, f.tickets[id])
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	var result []*entity.Ticket
	for i := offset; i < len(all) && i < offset+limit; i++ {
		ticket := all[i]
		result = append(result, &ticket)
	}
	return result, nil
}

func (f *fakeTicketRepo) FindByInvoiceID(_ context.Context, invoiceID int64) ([]entity.Ticket, error) {
	var result []entity.Ticket
	for id := range f.tickets {
		if f.tickets[id].InvoiceID == invoiceID {
			result = append(result, f.tickets[id])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeTicketRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.tickets[id]
	return ok, nil
}

func (f *fakeTicketRepo) Update(_ context.Context, ticket *entity.Ticket) error {
	if _, ok := f.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.tickets[ticket.ID] = *ticket
	return nil
}

func (f *fakeTicketRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.tickets, id)
	return nil
}

func (f *fakeTicketRepo) DeleteByInvoiceID(_ context.Context, invoiceID int64) error {
	for id := range f.tickets {
		if f.tickets[id].InvoiceID == invoiceID {
			delete(f.tickets, id)
		}
	}
	return nil
}
