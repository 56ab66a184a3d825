package collector

// MockFetcher returns controllable fixed data for development and testing.
// When Prices is set, successive calls walk through it and then repeat the
// final entry.
type MockFetcher struct {
	Price  float64
	Prices []float64
	Err    error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	if len(m.Prices) > 0 {
		i := m.Calls - 1
		if i >= len(m.Prices) {
			i = len(m.Prices) - 1
		}
		return m.Prices[i], nil
	}
	return m.Price, nil
}
