package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/t-rethnee/restaurant-console/models"
)

const (
	userFieldCount  = 5
	orderFieldCount = 6
)

var (
	errColumnCount = errors.New("wrong column count")
	errFieldWidth  = errors.New("field exceeds column width")
	errUnknownRole = errors.New("unrecognized role")
)

// Users file layout: username,email,phone,passwordHash,role

func encodeUser(u models.User) string {
	return strings.Join([]string{u.Username, u.Email, u.Phone, u.PasswordHash, string(u.Role)}, ",")
}

func decodeUser(line string) (models.User, error) {
	fields := strings.Split(line, ",")
	if len(fields) != userFieldCount {
		return models.User{}, errors.Wrapf(errColumnCount, "got %d, want %d", len(fields), userFieldCount)
	}
	widths := []int{
		models.MaxUsernameLen, models.MaxEmailLen, models.MaxPhoneLen,
		models.MaxPasswordLen, models.MaxRoleLen,
	}
	for i, max := range widths {
		if len(fields[i]) > max {
			return models.User{}, errors.Wrapf(errFieldWidth, "column %d", i+1)
		}
	}
	if !models.ValidRole(models.UserRole(fields[4])) {
		return models.User{}, errors.Wrapf(errUnknownRole, "%q", fields[4])
	}
	return models.User{
		Username:     fields[0],
		Email:        fields[1],
		Phone:        fields[2],
		PasswordHash: fields[3],
		Role:         models.UserRole(fields[4]),
	}, nil
}

// Orders file layout:
// customerName,itemName,quantity,status,totalAmount,orderTimeEpochSeconds
// with the amount fixed to 2 decimal places.

func encodeOrder(o models.Order) string {
	return fmt.Sprintf("%s,%s,%d,%s,%.2f,%d",
		o.CustomerName, o.ItemName, o.Quantity, o.Status, o.TotalAmount, o.OrderTime.Unix())
}

func decodeOrder(line string) (models.Order, error) {
	fields := strings.Split(line, ",")
	if len(fields) != orderFieldCount {
		return models.Order{}, errors.Wrapf(errColumnCount, "got %d, want %d", len(fields), orderFieldCount)
	}
	if len(fields[0]) > models.MaxUsernameLen || len(fields[1]) > models.MaxItemNameLen || len(fields[3]) > models.MaxStatusLen {
		return models.Order{}, errFieldWidth
	}
	quantity, err := strconv.Atoi(fields[2])
	if err != nil {
		return models.Order{}, errors.Wrap(err, "quantity")
	}
	total, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return models.Order{}, errors.Wrap(err, "total amount")
	}
	epoch, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return models.Order{}, errors.Wrap(err, "order time")
	}
	return models.Order{
		CustomerName: fields[0],
		ItemName:     fields[1],
		Quantity:     quantity,
		Status:       models.OrderStatus(fields[3]),
		TotalAmount:  total,
		OrderTime:    time.Unix(epoch, 0),
	}, nil
}
