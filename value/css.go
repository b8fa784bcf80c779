package value

// cssColors is the CSS named colour table in declaration order: the 16
// basic colours, the extended keywords, then transparent. Components are
// sRGB in [0, 1].
var cssColors = []NamedColor{
	{"black", "#000000", [4]float64{0.0, 0.0, 0.0, 1.0}},
	{"silver", "#c0c0c0", [4]float64{0.7529411764705882, 0.7529411764705882, 0.7529411764705882, 1.0}},
	{"gray", "#808080", [4]float64{0.5019607843137255, 0.5019607843137255, 0.5019607843137255, 1.0}},
	{"white", "#ffffff", [4]float64{1.0, 1.0, 1.0, 1.0}},
	{"maroon", "#800000", [4]float64{0.5019607843137255, 0.0, 0.0, 1.0}},
	{"red", "#ff0000", [4]float64{1.0, 0.0, 0.0, 1.0}},
	{"purple", "#800080", [4]float64{0.5019607843137255, 0.0, 0.5019607843137255, 1.0}},
	{"fuchsia", "#ff00ff", [4]float64{1.0, 0.0, 1.0, 1.0}},
	{"green", "#008000", [4]float64{0.0, 0.5019607843137255, 0.0, 1.0}},
	{"lime", "#00ff00", [4]float64{0.0, 1.0, 0.0, 1.0}},
	{"olive", "#808000", [4]float64{0.5019607843137255, 0.5019607843137255, 0.0, 1.0}},
	{"yellow", "#ffff00", [4]float64{1.0, 1.0, 0.0, 1.0}},
	{"navy", "#000080", [4]float64{0.0, 0.0, 0.5019607843137255, 1.0}},
	{"blue", "#0000ff", [4]float64{0.0, 0.0, 1.0, 1.0}},
	{"teal", "#008080", [4]float64{0.0, 0.5019607843137255, 0.5019607843137255, 1.0}},
	{"aqua", "#00ffff", [4]float64{0.0, 1.0, 1.0, 1.0}},
	{"aliceblue", "#f0f8ff", [4]float64{0.9411764705882353, 0.9725490196078431, 1.0, 1.0}},
	{"antiquewhite", "#faebd7", [4]float64{0.9803921568627451, 0.9215686274509803, 0.8431372549019608, 1.0}},
	{"aquamarine", "#7fffd4", [4]float64{0.4980392156862745, 1.0, 0.8313725490196079, 1.0}},
	{"azure", "#f0ffff", [4]float64{0.9411764705882353, 1.0, 1.0, 1.0}},
	{"beige", "#f5f5dc", [4]float64{0.9607843137254902, 0.9607843137254902, 0.8627450980392157, 1.0}},
	{"bisque", "#ffe4c4", [4]float64{1.0, 0.8941176470588236, 0.7686274509803922, 1.0}},
	{"blanchedalmond", "#ffebcd", [4]float64{1.0, 0.9215686274509803, 0.803921568627451, 1.0}},
	{"blueviolet", "#8a2be2", [4]float64{0.5411764705882353, 0.16862745098039217, 0.8862745098039215, 1.0}},
	{"brown", "#a52a2a", [4]float64{0.6470588235294118, 0.16470588235294117, 0.16470588235294117, 1.0}},
	{"burlywood", "#deb887", [4]float64{0.8705882352941177, 0.7215686274509804, 0.5294117647058824, 1.0}},
	{"cadetblue", "#5f9ea0", [4]float64{0.37254901960784315, 0.6196078431372549, 0.6274509803921569, 1.0}},
	{"chartreuse", "#7fff00", [4]float64{0.4980392156862745, 1.0, 0.0, 1.0}},
	{"chocolate", "#d2691e", [4]float64{0.8235294117647058, 0.4117647058823529, 0.11764705882352941, 1.0}},
	{"coral", "#ff7f50", [4]float64{1.0, 0.4980392156862745, 0.3137254901960784, 1.0}},
	{"cornflowerblue", "#6495ed", [4]float64{0.39215686274509803, 0.5843137254901961, 0.9294117647058824, 1.0}},
	{"cornsilk", "#fff8dc", [4]float64{1.0, 0.9725490196078431, 0.8627450980392157, 1.0}},
	{"crimson", "#dc143c", [4]float64{0.8627450980392157, 0.0784313725490196, 0.23529411764705882, 1.0}},
	{"cyan", "#00ffff", [4]float64{0.0, 1.0, 1.0, 1.0}},
	{"darkblue", "#00008b", [4]float64{0.0, 0.0, 0.5450980392156862, 1.0}},
	{"darkcyan", "#008b8b", [4]float64{0.0, 0.5450980392156862, 0.5450980392156862, 1.0}},
	{"darkgoldenrod", "#b8860b", [4]float64{0.7215686274509804, 0.5254901960784314, 0.043137254901960784, 1.0}},
	{"darkgray", "#a9a9a9", [4]float64{0.6627450980392157, 0.6627450980392157, 0.6627450980392157, 1.0}},
	{"darkgreen", "#006400", [4]float64{0.0, 0.39215686274509803, 0.0, 1.0}},
	{"darkgrey", "#a9a9a9", [4]float64{0.6627450980392157, 0.6627450980392157, 0.6627450980392157, 1.0}},
	{"darkkhaki", "#bdb76b", [4]float64{0.7411764705882353, 0.7176470588235294, 0.4196078431372549, 1.0}},
	{"darkmagenta", "#8b008b", [4]float64{0.5450980392156862, 0.0, 0.5450980392156862, 1.0}},
	{"darkolivegreen", "#556b2f", [4]float64{0.3333333333333333, 0.4196078431372549, 0.1843137254901961, 1.0}},
	{"darkorange", "#ff8c00", [4]float64{1.0, 0.5490196078431373, 0.0, 1.0}},
	{"darkorchid", "#9932cc", [4]float64{0.6, 0.19607843137254902, 0.8, 1.0}},
	{"darkred", "#8b0000", [4]float64{0.5450980392156862, 0.0, 0.0, 1.0}},
	{"darksalmon", "#e9967a", [4]float64{0.9137254901960784, 0.5882352941176471, 0.47843137254901963, 1.0}},
	{"darkseagreen", "#8fbc8f", [4]float64{0.5607843137254902, 0.7372549019607844, 0.5607843137254902, 1.0}},
	{"darkslateblue", "#483d8b", [4]float64{0.2823529411764706, 0.23921568627450981, 0.5450980392156862, 1.0}},
	{"darkslategray", "#2f4f4f", [4]float64{0.1843137254901961, 0.30980392156862746, 0.30980392156862746, 1.0}},
	{"darkslategrey", "#2f4f4f", [4]float64{0.1843137254901961, 0.30980392156862746, 0.30980392156862746, 1.0}},
	{"darkturquoise", "#00ced1", [4]float64{0.0, 0.807843137254902, 0.8196078431372549, 1.0}},
	{"darkviolet", "#9400d3", [4]float64{0.5803921568627451, 0.0, 0.8274509803921568, 1.0}},
	{"deeppink", "#ff1493", [4]float64{1.0, 0.0784313725490196, 0.5764705882352941, 1.0}},
	{"deepskyblue", "#00bfff", [4]float64{0.0, 0.7490196078431373, 1.0, 1.0}},
	{"dimgray", "#696969", [4]float64{0.4117647058823529, 0.4117647058823529, 0.4117647058823529, 1.0}},
	{"dimgrey", "#696969", [4]float64{0.4117647058823529, 0.4117647058823529, 0.4117647058823529, 1.0}},
	{"dodgerblue", "#1e90ff", [4]float64{0.11764705882352941, 0.5647058823529412, 1.0, 1.0}},
	{"firebrick", "#b22222", [4]float64{0.6980392156862745, 0.13333333333333333, 0.13333333333333333, 1.0}},
	{"floralwhite", "#fffaf0", [4]float64{1.0, 0.9803921568627451, 0.9411764705882353, 1.0}},
	{"forestgreen", "#228b22", [4]float64{0.13333333333333333, 0.5450980392156862, 0.13333333333333333, 1.0}},
	{"gainsboro", "#dcdcdc", [4]float64{0.8627450980392157, 0.8627450980392157, 0.8627450980392157, 1.0}},
	{"ghostwhite", "#f8f8ff", [4]float64{0.9725490196078431, 0.9725490196078431, 1.0, 1.0}},
	{"gold", "#ffd700", [4]float64{1.0, 0.8431372549019608, 0.0, 1.0}},
	{"goldenrod", "#daa520", [4]float64{0.8549019607843137, 0.6470588235294118, 0.12549019607843137, 1.0}},
	{"greenyellow", "#adff2f", [4]float64{0.6784313725490196, 1.0, 0.1843137254901961, 1.0}},
	{"grey", "#808080", [4]float64{0.5019607843137255, 0.5019607843137255, 0.5019607843137255, 1.0}},
	{"honeydew", "#f0fff0", [4]float64{0.9411764705882353, 1.0, 0.9411764705882353, 1.0}},
	{"hotpink", "#ff69b4", [4]float64{1.0, 0.4117647058823529, 0.7058823529411765, 1.0}},
	{"indianred", "#cd5c5c", [4]float64{0.803921568627451, 0.3607843137254902, 0.3607843137254902, 1.0}},
	{"indigo", "#4b0082", [4]float64{0.29411764705882354, 0.0, 0.5098039215686274, 1.0}},
	{"ivory", "#fffff0", [4]float64{1.0, 1.0, 0.9411764705882353, 1.0}},
	{"khaki", "#f0e68c", [4]float64{0.9411764705882353, 0.9019607843137255, 0.5490196078431373, 1.0}},
	{"lavender", "#e6e6fa", [4]float64{0.9019607843137255, 0.9019607843137255, 0.9803921568627451, 1.0}},
	{"lavenderblush", "#fff0f5", [4]float64{1.0, 0.9411764705882353, 0.9607843137254902, 1.0}},
	{"lawngreen", "#7cfc00", [4]float64{0.48627450980392156, 0.9882352941176471, 0.0, 1.0}},
	{"lemonchiffon", "#fffacd", [4]float64{1.0, 0.9803921568627451, 0.803921568627451, 1.0}},
	{"lightblue", "#add8e6", [4]float64{0.6784313725490196, 0.8470588235294118, 0.9019607843137255, 1.0}},
	{"lightcoral", "#f08080", [4]float64{0.9411764705882353, 0.5019607843137255, 0.5019607843137255, 1.0}},
	{"lightcyan", "#e0ffff", [4]float64{0.8784313725490196, 1.0, 1.0, 1.0}},
	{"lightgoldenrodyellow", "#fafad2", [4]float64{0.9803921568627451, 0.9803921568627451, 0.8235294117647058, 1.0}},
	{"lightgray", "#d3d3d3", [4]float64{0.8274509803921568, 0.8274509803921568, 0.8274509803921568, 1.0}},
	{"lightgreen", "#90ee90", [4]float64{0.5647058823529412, 0.9333333333333333, 0.5647058823529412, 1.0}},
	{"lightgrey", "#d3d3d3", [4]float64{0.8274509803921568, 0.8274509803921568, 0.8274509803921568, 1.0}},
	{"lightpink", "#ffb6c1", [4]float64{1.0, 0.7137254901960784, 0.7568627450980392, 1.0}},
	{"lightsalmon", "#ffa07a", [4]float64{1.0, 0.6274509803921569, 0.47843137254901963, 1.0}},
	{"lightseagreen", "#20b2aa", [4]float64{0.12549019607843137, 0.6980392156862745, 0.6666666666666666, 1.0}},
	{"lightskyblue", "#87cefa", [4]float64{0.5294117647058824, 0.807843137254902, 0.9803921568627451, 1.0}},
	{"lightslategray", "#778899", [4]float64{0.4666666666666667, 0.5333333333333333, 0.6, 1.0}},
	{"lightslategrey", "#778899", [4]float64{0.4666666666666667, 0.5333333333333333, 0.6, 1.0}},
	{"lightsteelblue", "#b0c4de", [4]float64{0.6901960784313725, 0.7686274509803922, 0.8705882352941177, 1.0}},
	{"lightyellow", "#ffffe0", [4]float64{1.0, 1.0, 0.8784313725490196, 1.0}},
	{"limegreen", "#32cd32", [4]float64{0.19607843137254902, 0.803921568627451, 0.19607843137254902, 1.0}},
	{"linen", "#faf0e6", [4]float64{0.9803921568627451, 0.9411764705882353, 0.9019607843137255, 1.0}},
	{"magenta", "#ff00ff", [4]float64{1.0, 0.0, 1.0, 1.0}},
	{"mediumaquamarine", "#66cdaa", [4]float64{0.4, 0.803921568627451, 0.6666666666666666, 1.0}},
	{"mediumblue", "#0000cd", [4]float64{0.0, 0.0, 0.803921568627451, 1.0}},
	{"mediumorchid", "#ba55d3", [4]float64{0.7294117647058823, 0.3333333333333333, 0.8274509803921568, 1.0}},
	{"mediumpurple", "#9370db", [4]float64{0.5764705882352941, 0.4392156862745098, 0.8588235294117647, 1.0}},
	{"mediumseagreen", "#3cb371", [4]float64{0.23529411764705882, 0.7019607843137254, 0.44313725490196076, 1.0}},
	{"mediumslateblue", "#7b68ee", [4]float64{0.4823529411764706, 0.40784313725490196, 0.9333333333333333, 1.0}},
	{"mediumspringgreen", "#00fa9a", [4]float64{0.0, 0.9803921568627451, 0.6039215686274509, 1.0}},
	{"mediumturquoise", "#48d1cc", [4]float64{0.2823529411764706, 0.8196078431372549, 0.8, 1.0}},
	{"mediumvioletred", "#c71585", [4]float64{0.7803921568627451, 0.08235294117647059, 0.5215686274509804, 1.0}},
	{"midnightblue", "#191970", [4]float64{0.09803921568627451, 0.09803921568627451, 0.4392156862745098, 1.0}},
	{"mintcream", "#f5fffa", [4]float64{0.9607843137254902, 1.0, 0.9803921568627451, 1.0}},
	{"mistyrose", "#ffe4e1", [4]float64{1.0, 0.8941176470588236, 0.8823529411764706, 1.0}},
	{"moccasin", "#ffe4b5", [4]float64{1.0, 0.8941176470588236, 0.7098039215686275, 1.0}},
	{"navajowhite", "#ffdead", [4]float64{1.0, 0.8705882352941177, 0.6784313725490196, 1.0}},
	{"oldlace", "#fdf5e6", [4]float64{0.9921568627450981, 0.9607843137254902, 0.9019607843137255, 1.0}},
	{"olivedrab", "#6b8e23", [4]float64{0.4196078431372549, 0.5568627450980392, 0.13725490196078433, 1.0}},
	{"orange", "#ffa500", [4]float64{1.0, 0.6470588235294118, 0.0, 1.0}},
	{"orangered", "#ff4500", [4]float64{1.0, 0.27058823529411763, 0.0, 1.0}},
	{"orchid", "#da70d6", [4]float64{0.8549019607843137, 0.4392156862745098, 0.8392156862745098, 1.0}},
	{"palegoldenrod", "#eee8aa", [4]float64{0.9333333333333333, 0.9098039215686274, 0.6666666666666666, 1.0}},
	{"palegreen", "#98fb98", [4]float64{0.596078431372549, 0.984313725490196, 0.596078431372549, 1.0}},
	{"paleturquoise", "#afeeee", [4]float64{0.6862745098039216, 0.9333333333333333, 0.9333333333333333, 1.0}},
	{"palevioletred", "#db7093", [4]float64{0.8588235294117647, 0.4392156862745098, 0.5764705882352941, 1.0}},
	{"papayawhip", "#ffefd5", [4]float64{1.0, 0.9372549019607843, 0.8352941176470589, 1.0}},
	{"peachpuff", "#ffdab9", [4]float64{1.0, 0.8549019607843137, 0.7254901960784313, 1.0}},
	{"peru", "#cd853f", [4]float64{0.803921568627451, 0.5215686274509804, 0.24705882352941178, 1.0}},
	{"pink", "#ffc0cb", [4]float64{1.0, 0.7529411764705882, 0.796078431372549, 1.0}},
	{"plum", "#dda0dd", [4]float64{0.8666666666666667, 0.6274509803921569, 0.8666666666666667, 1.0}},
	{"powderblue", "#b0e0e6", [4]float64{0.6901960784313725, 0.8784313725490196, 0.9019607843137255, 1.0}},
	{"rebeccapurple", "#663399", [4]float64{0.4, 0.2, 0.6, 1.0}},
	{"rosybrown", "#bc8f8f", [4]float64{0.7372549019607844, 0.5607843137254902, 0.5607843137254902, 1.0}},
	{"royalblue", "#4169e1", [4]float64{0.2549019607843137, 0.4117647058823529, 0.8823529411764706, 1.0}},
	{"saddlebrown", "#8b4513", [4]float64{0.5450980392156862, 0.27058823529411763, 0.07450980392156863, 1.0}},
	{"salmon", "#fa8072", [4]float64{0.9803921568627451, 0.5019607843137255, 0.4470588235294118, 1.0}},
	{"sandybrown", "#f4a460", [4]float64{0.9568627450980393, 0.6431372549019608, 0.3764705882352941, 1.0}},
	{"seagreen", "#2e8b57", [4]float64{0.1803921568627451, 0.5450980392156862, 0.3411764705882353, 1.0}},
	{"seashell", "#fff5ee", [4]float64{1.0, 0.9607843137254902, 0.9333333333333333, 1.0}},
	{"sienna", "#a0522d", [4]float64{0.6274509803921569, 0.3215686274509804, 0.17647058823529413, 1.0}},
	{"skyblue", "#87ceeb", [4]float64{0.5294117647058824, 0.807843137254902, 0.9215686274509803, 1.0}},
	{"slateblue", "#6a5acd", [4]float64{0.41568627450980394, 0.35294117647058826, 0.803921568627451, 1.0}},
	{"slategray", "#708090", [4]float64{0.4392156862745098, 0.5019607843137255, 0.5647058823529412, 1.0}},
	{"slategrey", "#708090", [4]float64{0.4392156862745098, 0.5019607843137255, 0.5647058823529412, 1.0}},
	{"snow", "#fffafa", [4]float64{1.0, 0.9803921568627451, 0.9803921568627451, 1.0}},
	{"springgreen", "#00ff7f", [4]float64{0.0, 1.0, 0.4980392156862745, 1.0}},
	{"steelblue", "#4682b4", [4]float64{0.27450980392156865, 0.5098039215686274, 0.7058823529411765, 1.0}},
	{"tan", "#d2b48c", [4]float64{0.8235294117647058, 0.7058823529411765, 0.5490196078431373, 1.0}},
	{"thistle", "#d8bfd8", [4]float64{0.8470588235294118, 0.7490196078431373, 0.8470588235294118, 1.0}},
	{"tomato", "#ff6347", [4]float64{1.0, 0.38823529411764707, 0.2784313725490196, 1.0}},
	{"turquoise", "#40e0d0", [4]float64{0.25098039215686274, 0.8784313725490196, 0.8156862745098039, 1.0}},
	{"violet", "#ee82ee", [4]float64{0.9333333333333333, 0.5098039215686274, 0.9333333333333333, 1.0}},
	{"wheat", "#f5deb3", [4]float64{0.9607843137254902, 0.8705882352941177, 0.7019607843137254, 1.0}},
	{"whitesmoke", "#f5f5f5", [4]float64{0.9607843137254902, 0.9607843137254902, 0.9607843137254902, 1.0}},
	{"yellowgreen", "#9acd32", [4]float64{0.6039215686274509, 0.803921568627451, 0.19607843137254902, 1.0}},
	{"transparent", "transparent", [4]float64{0.0, 0.0, 0.0, 0.0}},
}
