package converter

type CartItemRedisModel struct {
	ProductID  int64  `json:"product_id"`
	Name       string `json:"name"`
	ImgURL     string `json:"img_url"`
	Price      int64  `json:"price"`
	Quantity   int32  `json:"quantity"`
	IsBought   bool   `json:"is_bought"`
	TotalPrice int64  `json:"total_price"`
}
