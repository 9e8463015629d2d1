package order

import "sync"

// Store: oturum boyunca bellekte tutulan normalize edilmiş kayıtlar.
// Görünümler her istekte bu kayıtlardan türetilir, hiçbir şey diske yazılmaz.
type Store struct {
	mu      sync.RWMutex
	records []NormalizedRecord
	nextID  int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// Load: bir parti ham satırı normalize edip depoya ekler. ID'ler yükleme
// sırası boyunca kesintisiz artar. Eklenen kayıt sayısını döndürür.
func (s *Store) Load(rows []RawRow, date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := Normalize(rows, date, s.nextID)
	s.records = append(s.records, records...)
	s.nextID += len(records)
	return len(records)
}

// Snapshot: kayıtların kopyasını döndürür; çağıran dilimi güvenle işleyebilir.
func (s *Store) Snapshot() []NormalizedRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]NormalizedRecord, len(s.records))
	copy(out, s.records)
	return out
}

// View: mevcut kayıtlar üzerinde görünümü hesaplar.
func (s *Store) View(params ViewParams) ViewResult {
	return ComputeView(s.Snapshot(), params)
}

// Clear: tüm kayıtları siler, ID sayacını başa alır (yeni oturum).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.nextID = 1
}

// Count: depodaki toplam kayıt sayısı.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
