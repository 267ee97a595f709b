// Package loader parses the flat seed file that describes a clinic's initial
// rooms, staff and patients. The format is line oriented: the clinic name,
// then a count followed by that many definition lines, three times over.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/clinichq/frontdesk-api/internal/model"
)

// SeedData is the fully parsed seed file, ready for LoadInitialState.
type SeedData struct {
	Name    string
	Rooms   []model.RoomDefinition
	Staff   []model.StaffDefinition
	Clients []model.ClientDefinition
}

// ParseFile reads and parses the seed file at path.
func ParseFile(path string) (*SeedData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses seed data from r.
func Parse(r io.Reader) (*SeedData, error) {
	lines := bufio.NewScanner(r)

	name, err := nextLine(lines)
	if err != nil {
		return nil, fmt.Errorf("clinic name: %w", err)
	}
	data := &SeedData{Name: name}

	roomCount, err := nextCount(lines, "room")
	if err != nil {
		return nil, err
	}
	for i := 0; i < roomCount; i++ {
		def, err := parseRoom(lines)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", i+1, err)
		}
		data.Rooms = append(data.Rooms, def)
	}

	staffCount, err := nextCount(lines, "staff")
	if err != nil {
		return nil, err
	}
	for i := 0; i < staffCount; i++ {
		def, err := parseStaff(lines)
		if err != nil {
			return nil, fmt.Errorf("staff %d: %w", i+1, err)
		}
		data.Staff = append(data.Staff, def)
	}

	clientCount, err := nextCount(lines, "client")
	if err != nil {
		return nil, err
	}
	for i := 0; i < clientCount; i++ {
		def, err := parseClient(lines)
		if err != nil {
			return nil, fmt.Errorf("client %d: %w", i+1, err)
		}
		data.Clients = append(data.Clients, def)
	}

	return data, nil
}

// parseRoom reads a line of four layout ints, a type tag, and the room name
// as the rest of the line.
func parseRoom(lines *bufio.Scanner) (model.RoomDefinition, error) {
	line, err := nextLine(lines)
	if err != nil {
		return model.RoomDefinition{}, err
	}
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return model.RoomDefinition{}, fmt.Errorf("want 4 layout ints, a type and a name, got %q", line)
	}
	var id model.RoomID
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return model.RoomDefinition{}, fmt.Errorf("layout id %q: %w", fields[i], err)
		}
		id[i] = n
	}
	return model.RoomDefinition{
		ID:   id,
		Type: fields[4],
		Name: strings.Join(fields[5:], " "),
	}, nil
}

func parseStaff(lines *bufio.Scanner) (model.StaffDefinition, error) {
	line, err := nextLine(lines)
	if err != nil {
		return model.StaffDefinition{}, err
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return model.StaffDefinition{}, fmt.Errorf("want occupation, first and last name, got %q", line)
	}
	return model.StaffDefinition{
		Occupation: fields[0],
		FirstName:  fields[1],
		LastName:   fields[2],
	}, nil
}

func parseClient(lines *bufio.Scanner) (model.ClientDefinition, error) {
	line, err := nextLine(lines)
	if err != nil {
		return model.ClientDefinition{}, err
	}
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return model.ClientDefinition{}, fmt.Errorf("want room number, names and birth date, got %q", line)
	}
	roomNumber, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.ClientDefinition{}, fmt.Errorf("room number %q: %w", fields[0], err)
	}
	return model.ClientDefinition{
		RoomNumber: roomNumber,
		FirstName:  fields[1],
		LastName:   fields[2],
		BirthDate:  fields[3],
	}, nil
}

func nextCount(lines *bufio.Scanner, what string) (int, error) {
	line, err := nextLine(lines)
	if err != nil {
		return 0, fmt.Errorf("%s count: %w", what, err)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%s count %q: %w", what, line, err)
	}
	return n, nil
}

// nextLine returns the next non-blank line, trimmed.
func nextLine(lines *bufio.Scanner) (string, error) {
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := lines.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}
