package problem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// New builds a Data value from an explicit client vector and distance
// matrix row-major slice. Client 0 must be the depot. dist must be an
// n×n matrix where n == len(clients); it is validated to be symmetric,
// non-negative, with a zero diagonal.
//
// nbVehicles and vehicleCapacity are plain arguments, so the same clients
// and matrix can be re-solved under a different fleet size or capacity
// without re-parsing.
func New(clients []Client, dist [][]int64, nbVehicles int, vehicleCapacity int64) (*Data, error) {
	if len(clients) == 0 {
		return nil, fmt.Errorf("%w: no clients (missing depot)", ErrInvalidInstance)
	}
	if nbVehicles <= 0 {
		return nil, fmt.Errorf("%w: nbVehicles must be positive", ErrInvalidInstance)
	}
	if vehicleCapacity < 0 {
		return nil, fmt.Errorf("%w: vehicleCapacity must be non-negative", ErrInvalidInstance)
	}
	if err := validateClients(clients); err != nil {
		return nil, err
	}

	n := len(clients)
	if len(dist) != n {
		return nil, fmt.Errorf("%w: distance matrix has %d rows, want %d", ErrInvalidInstance, len(dist), n)
	}
	m := newDistanceMatrix(n)
	for i := range dist {
		if len(dist[i]) != n {
			return nil, fmt.Errorf("%w: distance matrix row %d has %d entries, want %d", ErrInvalidInstance, i, len(dist[i]), n)
		}
		for j, v := range dist[i] {
			m.set(i, j, v)
		}
	}
	if err := m.validateSymmetricNonNegative(); err != nil {
		return nil, err
	}

	return &Data{Clients: clients, NbVehicles: nbVehicles, VehicleCapacity: vehicleCapacity, dist: m}, nil
}

// NewEuclidean builds a Data value deriving the distance matrix from client
// coordinates via rounded Euclidean distance instead of an explicit matrix.
func NewEuclidean(clients []Client, nbVehicles int, vehicleCapacity int64) (*Data, error) {
	if len(clients) == 0 {
		return nil, fmt.Errorf("%w: no clients (missing depot)", ErrInvalidInstance)
	}
	if nbVehicles <= 0 {
		return nil, fmt.Errorf("%w: nbVehicles must be positive", ErrInvalidInstance)
	}
	if vehicleCapacity < 0 {
		return nil, fmt.Errorf("%w: vehicleCapacity must be non-negative", ErrInvalidInstance)
	}
	if err := validateClients(clients); err != nil {
		return nil, err
	}

	m := deriveEuclidean(clients)

	return &Data{Clients: clients, NbVehicles: nbVehicles, VehicleCapacity: vehicleCapacity, dist: m}, nil
}

func validateClients(clients []Client) error {
	depot := clients[0]
	if depot.Demand != 0 {
		return fmt.Errorf("%w: depot demand must be 0", ErrInvalidInstance)
	}
	for i, c := range clients {
		if c.Demand < 0 {
			return fmt.Errorf("%w: client %d has negative demand", ErrInvalidInstance, i)
		}
		if c.Service < 0 {
			return fmt.Errorf("%w: client %d has negative service duration", ErrInvalidInstance, i)
		}
		if c.TWEarly < 0 || c.TWLate < c.TWEarly {
			return fmt.Errorf("%w: client %d has malformed time window [%d,%d]", ErrInvalidInstance, i, c.TWEarly, c.TWLate)
		}
		if c.Release < 0 {
			return fmt.Errorf("%w: client %d has negative release time", ErrInvalidInstance, i)
		}
	}

	return nil
}

// Load parses the plain-text instance format:
//
//	nbClients nbVehicles vehicleCapacity
//	id xCoord yCoord demand twEarly twLate service releaseTime
//	...
//
// with one header line followed by nbClients+1 client lines (id 0 is the
// depot). The distance matrix is derived via rounded Euclidean distance.
// Blank lines and lines starting with '#' are skipped, matching the
// teacher's tolerant line-based parsers (see tsp/example_test.go's inline
// fixtures for the same "skip blank/comment" convention used across the
// pack's instance readers).
func Load(r io.Reader) (*Data, error) {
	scanner := bufio.NewScanner(r)
	var header []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		header = strings.Fields(line)
		break
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("problem: reading header: %w", err)
	}
	if len(header) != 3 {
		return nil, fmt.Errorf("%w: header must have 3 fields (nbClients nbVehicles vehicleCapacity)", ErrInvalidInstance)
	}
	nbClients, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad nbClients: %v", ErrInvalidInstance, err)
	}
	nbVehicles, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad nbVehicles: %v", ErrInvalidInstance, err)
	}
	vehicleCapacity, err := strconv.ParseInt(header[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad vehicleCapacity: %v", ErrInvalidInstance, err)
	}

	clients := make([]Client, 0, nbClients+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 8 {
			return nil, fmt.Errorf("%w: client line %q must have 8 fields", ErrInvalidInstance, line)
		}
		vals := make([]int64, 7)
		for i, f := range fields[1:] {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: client line %q: %v", ErrInvalidInstance, line, err)
			}
			vals[i] = v
		}
		clients = append(clients, Client{
			X: int(vals[0]), Y: int(vals[1]),
			Demand: vals[2], TWEarly: vals[3], TWLate: vals[4],
			Service: vals[5], Release: vals[6],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("problem: reading clients: %w", err)
	}
	if len(clients) != nbClients+1 {
		return nil, fmt.Errorf("%w: header declares %d clients, found %d lines", ErrInvalidInstance, nbClients, len(clients)-1)
	}

	return NewEuclidean(clients, nbVehicles, vehicleCapacity)
}
