package services

import (
	"strconv"
	"strings"

	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/pkg/utils"
)

var billCategories = map[string]bool{
	"Food":          true,
	"Transport":     true,
	"Accommodation": true,
	"Activities":    true,
	"Shopping":      true,
	"Other":         true,
}

type BillServiceInterface interface {
	Split(req request_models.SplitBillRequest) (*response_models.SplitBillResponse, error)
	DefaultPeople() []request_models.PersonInput
}

type BillService struct{}

func NewBillService() BillServiceInterface {
	return &BillService{}
}

func (b *BillService) DefaultPeople() []request_models.PersonInput {
	return []request_models.PersonInput{
		{ID: "1", Name: "You"},
		{ID: "2", Name: "Friend 1"},
		{ID: "3", Name: "Friend 2"},
	}
}

// Split computes each person's share. An item's price is divided evenly
// among its sharers; items nobody shares are counted in the bill total only.
func (b *BillService) Split(req request_models.SplitBillRequest) (*response_models.SplitBillResponse, error) {
	people := req.People
	if len(people) == 0 {
		people = b.DefaultPeople()
	}

	v := utils.NewValidationError()
	seen := make(map[string]bool, len(people))
	for i := range people {
		if people[i].ID == "" {
			people[i].ID = strconv.Itoa(i + 1)
		}
		if strings.TrimSpace(people[i].Name) == "" {
			v.Add("people", "Every person needs a name")
		}
		if seen[people[i].ID] {
			v.Add("people", "Person ids must be unique")
		}
		seen[people[i].ID] = true
	}
	for _, it := range req.Items {
		if strings.TrimSpace(it.Name) == "" {
			v.Add("items", "Every item needs a name")
		}
		if it.Price < 0 {
			v.Add("items", "Item prices cannot be negative")
		}
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	everyone := make([]string, 0, len(people))
	for _, p := range people {
		everyone = append(everyone, p.ID)
	}

	items := make([]response_models.BillItem, 0, len(req.Items))
	for i, in := range req.Items {
		item := response_models.BillItem{
			ID:       in.ID,
			Name:     strings.TrimSpace(in.Name),
			Price:    in.Price,
			Category: in.Category,
		}
		if item.ID == "" {
			item.ID = "item-" + strconv.Itoa(i+1)
		}
		if !billCategories[item.Category] {
			item.Category = "Other"
		}
		if in.SharedBy == nil {
			item.SharedBy = append([]string{}, everyone...)
		} else {
			item.SharedBy = make([]string, 0, len(in.SharedBy))
			for _, id := range in.SharedBy {
				if seen[id] && !containsString(item.SharedBy, id) {
					item.SharedBy = append(item.SharedBy, id)
				}
			}
		}
		items = append(items, item)
	}

	for _, id := range req.RemovePersons {
		people, items = removePerson(people, items, id)
	}

	return computeShares(people, items), nil
}

// removePerson drops a person and their item shares. The last remaining
// person is kept.
func removePerson(people []request_models.PersonInput, items []response_models.BillItem, id string) ([]request_models.PersonInput, []response_models.BillItem) {
	if len(people) <= 1 {
		return people, items
	}
	kept := make([]request_models.PersonInput, 0, len(people))
	for _, p := range people {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(people) {
		return people, items
	}
	for i := range items {
		shared := items[i].SharedBy[:0:0]
		for _, s := range items[i].SharedBy {
			if s != id {
				shared = append(shared, s)
			}
		}
		items[i].SharedBy = shared
	}
	return kept, items
}

func computeShares(people []request_models.PersonInput, items []response_models.BillItem) *response_models.SplitBillResponse {
	resp := &response_models.SplitBillResponse{
		People: make([]response_models.PersonShare, 0, len(people)),
		Items:  items,
	}
	for _, it := range items {
		resp.TotalBill += it.Price
	}
	for _, p := range people {
		share := response_models.PersonShare{ID: p.ID, Name: p.Name, Items: []response_models.BillItem{}}
		for _, it := range items {
			if containsString(it.SharedBy, p.ID) {
				share.Items = append(share.Items, it)
				share.Total += it.Price / float64(len(it.SharedBy))
			}
		}
		resp.People = append(resp.People, share)
	}
	return resp
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
